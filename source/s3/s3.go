// Package s3 implements source.Opener on top of AWS S3.
//
// Objects are expected to be gzip-compressed and stored under
// "<prefix>/<name>.gz", matching how the MetaNetX dumps are published.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dd-decaf/metanetx/source"
)

// Opener reads compressed source tables from an S3 bucket.
type Opener struct {
	client *s3.Client
	bucket string
	prefix string
}

// New creates an S3 opener. prefix is prepended to all keys (e.g. "metanetx/").
func New(client *s3.Client, bucket, prefix string) *Opener {
	return &Opener{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open fetches and decompresses the named table.
func (o *Opener) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := path.Join(o.prefix, name+".gz")
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("s3://%s/%s: %w", o.bucket, key, source.ErrNotFound)
		}
		return nil, err
	}
	return source.Gunzip(out.Body)
}
