package verify

import (
	"context"
	"fmt"
	"time"

	"mirrorcheck/core/storage"

	"github.com/minio/minio-go/v7"
)

// NewS3Source expands an s3://bucket/prefix specification into a TableSource
// by listing the bucket and presigning a GET URL per object. Downstream the
// table behaves exactly like one read from a URL list file, so comparison
// and probing run over plain HTTP.
func NewS3Source(ctx context.Context, client storage.Client, bucket, prefix string, expiry time.Duration) (*TableSource, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	entries := make(map[string]string)
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", bucket, obj.Err)
		}
		name := NameOf(obj.Key)
		if name == "" {
			continue
		}
		u, err := client.PresignedGetObject(ctx, bucket, obj.Key, expiry, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to presign %s: %w", obj.Key, err)
		}
		entries[name] = u.String()
	}

	return &TableSource{entries: entries}, nil
}
