// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the job tracker can archive every imported CSV
// export in an S3-compatible bucket and re-import an archived export later.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
//	key := cfg.Storage.ArchiveKey(batchID) // imports/<batch>.csv
package storage
