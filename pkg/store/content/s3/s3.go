// Package s3 implements content storage on Amazon S3 or S3-compatible
// object stores (MinIO, Cubbit DS3, localstack).
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/marmos91/dittodrive/pkg/store/content"
)

// S3ContentStore implements content.Store on an S3 bucket.
//
// Each content id maps to one object under an optional key prefix. Contents
// are written and read whole; concurrent writes to the same id are
// last-write-wins, which matches the content.Store contract.
type S3ContentStore struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
}

// S3ContentStoreConfig contains configuration for an S3 content store.
type S3ContentStoreConfig struct {
	// Client is the configured S3 client
	Client *s3.Client

	// Bucket is the S3 bucket name. The bucket must already exist.
	Bucket string

	// KeyPrefix is an optional prefix for all object keys.
	// Example: "dittodrive/content/" yields keys like "dittodrive/content/abc".
	KeyPrefix string
}

// NewS3ContentStore creates an S3-backed content store and verifies bucket
// access with a HeadBucket call.
func NewS3ContentStore(ctx context.Context, config S3ContentStoreConfig) (*S3ContentStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if config.Client == nil {
		return nil, fmt.Errorf("S3 client is required")
	}
	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	store := &S3ContentStore{
		client:    config.Client,
		bucket:    config.Bucket,
		keyPrefix: config.KeyPrefix,
	}

	if err := store.Healthcheck(ctx); err != nil {
		return nil, fmt.Errorf("failed to access bucket %s: %w", config.Bucket, err)
	}

	return store, nil
}

// WriteContent uploads data as a single object, overwriting any previous
// object under the same id.
func (store *S3ContentStore) WriteContent(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(store.objectKey(id)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("failed to write content to S3: %w", err)
	}
	return nil
}

// ReadContent downloads the full object stored under id.
func (store *S3ContentStore) ReadContent(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(store.objectKey(id)),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("content %s: %w", id, content.ErrContentNotFound)
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

// Healthcheck verifies the bucket is reachable.
func (store *S3ContentStore) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := store.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(store.bucket),
	})
	return err
}

// Close is a no-op; the S3 client holds no local resources to release.
func (store *S3ContentStore) Close() error {
	return nil
}

func (store *S3ContentStore) objectKey(id string) string {
	return store.keyPrefix + id
}
