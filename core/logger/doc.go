// Package logger provides a structured logging facility based on Zap.
//
// Both the exerciser and the mock server log through a logger built here. Logs are written
// to stderr; the exerciser's report owns stdout.
//
// # Context Awareness
//
// On the mock server every request carries a RayID. The WithRayID helper extracts it from a
// Fiber context and attaches it to the log entry, so all logs for one request correlate with
// the X-Ray-ID header the exerciser sees.
//
// # Configuration
//
//   - Level: debug, info, warn, error (default warn)
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Mock server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
