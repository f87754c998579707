package mockserver

import (
	"badger-probe/core/loader"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface for one resource of the mock API.
type Feature struct {
	name     string
	register func(fiber.Router)
}

// NewFeatures returns one feature per mock API resource, all served by h.
func NewFeatures(h *Handler) []loader.Feature {
	return []loader.Feature{
		&Feature{name: "profile", register: h.RegisterProfileRoutes},
		&Feature{name: "accounts", register: h.RegisterAccountRoutes},
		&Feature{name: "appointments", register: h.RegisterAppointmentRoutes},
		&Feature{name: "routes", register: h.RegisterRouteRoutes},
		&Feature{name: "search", register: h.RegisterSearchRoutes},
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return f.name
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(r fiber.Router) error {
	f.register(r)
	return nil
}
