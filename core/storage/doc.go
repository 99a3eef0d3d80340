// Package storage provides the low-level client for S3-compatible object stores.
//
// It wraps the MinIO Go client behind a small interface so higher layers never
// touch the concrete client directly. This supports both AWS S3 and self-hosted
// MinIO instances, and makes storage interactions mockable for unit testing
// (see core/storage/mocks).
//
// # Configuration
//
// Config carries the five connection settings (bucket name, endpoint, access
// key, secret key, secure flag) plus optional region and timeout. Validate
// normalizes the endpoint (scheme and trailing slashes are stripped) and
// rejects incomplete configurations before any client is built.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket management.
//   - PutObject / GetObject / StatObject / RemoveObject: object lifecycle.
//   - ListObjects: bucket listing (supports prefix/recursive).
//   - PresignedGetObject: time-limited read URLs.
//
// # Usage
//
//	if err := cfg.Validate(); err != nil { ... }
//	client, err := storage.NewClient(cfg)
//	exists, err := client.BucketExists(ctx, cfg.BucketName)
package storage
