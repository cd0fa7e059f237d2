// Package mocks holds testify mocks for the storage package.
package mocks

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client mocks storage.Client.
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	ret := m.Called(ctx, bucket)
	return ret.Bool(0), ret.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	return m.Called(ctx, bucket, opts).Error(0)
}

// PutObject records the call; a nil first return value yields an empty UploadInfo.
func (m *Client) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	ret := m.Called(ctx, bucket, key, r, size, opts)
	info, _ := ret.Get(0).(minio.UploadInfo)
	return info, ret.Error(1)
}

func (m *Client) GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	ret := m.Called(ctx, bucket, key, opts)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

// ListObjects returns the configured channel, or a closed one when the
// expectation returns nil.
func (m *Client) ListObjects(ctx context.Context, bucket string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	if ch, ok := m.Called(ctx, bucket, opts).Get(0).(<-chan minio.ObjectInfo); ok {
		return ch
	}
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}
