// Package middleware contains HTTP middleware for the mock server's Fiber application.
//
// # Components
//
//   - RayID: Tags every incoming request with a unique Request ID (RayID), stored in the
//     context and echoed in the X-Ray-ID response header for tracing.
package middleware
