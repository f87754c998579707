// Package mockserver implements a stand-in for the BadgerMaps REST API.
//
// Responses are built from canned JSON fixtures read through a Source on every request:
// the files bundled in the binary, a local directory, an object storage bucket or a
// database table. Detail endpoints rewrite identifiers to the requested id, and write
// endpoints echo the submitted fields, so the server is stateless and deterministic.
//
// SeedBucket and SeedDatabase copy the bundled fixtures to the remote sources.
package mockserver
