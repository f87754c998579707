// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the mock server can read its fixture responses from an
// S3 compatible bucket, and so `mock seed` can upload the embedded fixture set there.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket when seeding into a fresh deployment.
//   - PutObject: Uploads a fixture.
//   - GetObject: Retrieves a fixture as a stream.
//   - ListObjects: Lists fixtures under the configured prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
