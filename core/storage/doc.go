// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that s3:// source specifications can be
// expanded into a plain URL table: the bucket is listed and a presigned GET
// URL is produced per object, after which the verification pipeline treats
// the objects like any other HTTP sources. This works against both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - PresignedGetObject: Produces a time-limited GET URL for an object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "mirrors")
package storage
