// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so templates and the rule index can be served from
// an S3-compatible bucket instead of the local filesystem.
//
// # Operations
//
//   - BucketExists / EnsureBucket: verify or create the template bucket.
//   - PutObject: upload a template (used by `templates push`).
//   - GetObject / ReadObject: fetch a template or index file.
//   - ListObjects / ListNames: enumerate templates under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "templates/index")
package storage
