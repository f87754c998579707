// Package server holds the mock API server configuration and constants.
//
// The `mock` command builds the fiber application; this package only defines the listen
// port and the supported fixture sources (embedded, dir, bucket, database).
package server
