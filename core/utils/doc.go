// Package utils provides common utility functions for badger-probe.
// It includes helpers for converting loosely typed JSON values into ids and display strings,
// shared by the exerciser and the mock server.
package utils
