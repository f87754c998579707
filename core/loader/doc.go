// Package loader provides the plugin-like feature loading system of the mock server.
//
// Each feature implements the Feature interface, which defines its name, whether it is
// enabled, and its route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// The mock server registers one feature per API resource (profile, accounts, appointments,
// routes, search) so each can be tested in isolation.
package loader
