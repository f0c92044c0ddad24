// Package s3target implements an AWS S3 backend for s3://bucket/key targets.
package s3target

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// Scheme is the target scheme served by this backend.
const Scheme = "s3"

// Compile-time check that Backend implements target.Backend.
var _ target.Backend = (*Backend)(nil)

// API is the subset of the S3 client used by the backend.
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Backend is an AWS S3 backend.
// Locations have the form "bucket/key".
type Backend struct {
	client API
}

// New creates a new S3 backend from the default AWS configuration.
func New(ctx context.Context, opts ...Option) (*Backend, error) {
	b := &Backend{}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	if b.client == nil {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		b.client = s3.NewFromConfig(cfg)
	}

	return b, nil
}

// Option configures a Backend.
type Option func(*Backend) error

// WithClient uses client instead of one built from the default configuration.
func WithClient(client API) Option {
	return func(b *Backend) error {
		b.client = client
		return nil
	}
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(b *Backend) error {
		cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
		if err != nil {
			return fmt.Errorf("loading AWS config with region: %w", err)
		}
		b.client = s3.NewFromConfig(cfg)
		return nil
	}
}

// WithEndpoint sets a custom endpoint (for S3-compatible services like MinIO).
func WithEndpoint(endpoint string) Option {
	return func(b *Backend) error {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return fmt.Errorf("loading AWS config for endpoint: %w", err)
		}
		b.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
		return nil
	}
}

// OpenReader streams the object at loc.
func (b *Backend) OpenReader(ctx context.Context, loc string) (io.ReadCloser, error) {
	bucket, key, err := target.SplitBucket(loc)
	if err != nil {
		return nil, err
	}

	body, err := b.get(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// OpenWriter buffers the written bytes and uploads them when the writer is
// closed. Appending downloads the existing object first; a missing object
// is treated as empty.
func (b *Backend) OpenWriter(ctx context.Context, loc string, m mode.Mode) (io.WriteCloser, error) {
	if !m.CanWrite() {
		return nil, fmt.Errorf("%w: %s", target.ErrUnsupportedMode, m)
	}
	bucket, key, err := target.SplitBucket(loc)
	if err != nil {
		return nil, err
	}

	w := &objectWriter{ctx: ctx, client: b.client, bucket: bucket, key: key}
	if m == mode.Append {
		body, err := b.get(ctx, bucket, key)
		switch {
		case errors.Is(err, target.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			_, err := w.buf.ReadFrom(body)
			body.Close()
			if err != nil {
				return nil, fmt.Errorf("reading s3://%s/%s for append: %w", bucket, key, err)
			}
		}
	}
	return w, nil
}

// Close releases resources.
func (b *Backend) Close() error {
	// S3 client doesn't need explicit closing.
	return nil
}

func (b *Backend) get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: s3://%s/%s", target.ErrNotFound, bucket, key)
		}
		return nil, fmt.Errorf("reading s3://%s/%s: %w", bucket, key, err)
	}
	return result.Body, nil
}

type objectWriter struct {
	ctx    context.Context
	client API
	bucket string
	key    string
	buf    bytes.Buffer
	closed bool
}

func (w *objectWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("s3target: write to closed s3://%s/%s", w.bucket, w.key)
	}
	return w.buf.Write(p)
}

func (w *objectWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	_, err := w.client.PutObject(w.ctx, &s3.PutObjectInput{
		Bucket: aws.String(w.bucket),
		Key:    aws.String(w.key),
		Body:   bytes.NewReader(w.buf.Bytes()),
	})
	if err != nil {
		return fmt.Errorf("writing s3://%s/%s: %w", w.bucket, w.key, err)
	}
	return nil
}
