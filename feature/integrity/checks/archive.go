package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"job-tracker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive check findings.
const (
	MissingBucket = "bucket"
	MissingPrefix = "prefix"
)

// CheckArchive returns what is missing for the import archive: the bucket
// itself, or the folder marker of the import prefix.
func CheckArchive(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return []string{MissingBucket, MissingPrefix}, nil
	}

	opts := minio.ListObjectsOptions{
		Prefix:    folderPath(prefix),
		Recursive: false,
		MaxKeys:   1,
	}
	for range client.ListObjects(ctx, bucket, opts) {
		return []string{}, nil
	}
	return []string{MissingPrefix}, nil
}

// FixArchive creates the missing bucket and prefix folder marker.
func FixArchive(ctx context.Context, client storage.Client, bucket, region, prefix string, logger *zap.Logger, missing []string) error {
	for _, item := range missing {
		switch item {
		case MissingBucket:
			if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
				logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
				return err
			}
			logger.Info("Created missing bucket", zap.String("bucket", bucket))
		case MissingPrefix:
			marker := folderPath(prefix)
			if _, err := client.PutObject(ctx, bucket, marker, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{}); err != nil {
				logger.Error("Failed to create folder", zap.String("folder", marker), zap.Error(err))
				return err
			}
			logger.Info("Created missing folder", zap.String("folder", marker))
		}
	}
	return nil
}

func folderPath(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
