// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the catalog publication sink needs. This abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Verify or create the target bucket.
//   - StatObject: Detect whether a catalog object already exists, which
//     drives the created/overwritten/skipped write outcome.
//   - PutObject / GetObject: Upload and retrieve catalog content.
//   - ListObjects / RemoveObject: Housekeeping over published catalogs.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "catalogs")
package storage
