// Package minio implements source.Opener for MinIO and other S3-compatible
// object stores.
//
// Objects are expected to be gzip-compressed and stored under
// "<prefix>/<name>.gz", matching how the MetaNetX dumps are published.
package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"

	"github.com/dd-decaf/metanetx/source"
)

// Opener reads compressed source tables from an S3-compatible bucket.
type Opener struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a MinIO opener. prefix is prepended to all keys (e.g. "metanetx/").
func New(client *minio.Client, bucket, prefix string) *Opener {
	return &Opener{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open fetches and decompresses the named table.
func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(o.prefix, name+".gz")
	obj, err := o.client.GetObject(ctx, o.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject is lazy; a missing key only surfaces on first read or Stat.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%s/%s: %w", o.bucket, key, source.ErrNotFound)
		}
		return nil, err
	}
	return source.Gunzip(obj)
}
