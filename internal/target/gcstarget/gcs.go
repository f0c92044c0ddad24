// Package gcstarget implements a Google Cloud Storage backend for
// gs://bucket/object targets.
package gcstarget

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// Scheme is the target scheme served by this backend.
const Scheme = "gs"

// Compile-time check that Backend implements target.Backend.
var _ target.Backend = (*Backend)(nil)

// Objects opens object handles. It is satisfied by a *storage.Client via
// ClientObjects and replaced by fakes in tests.
type Objects interface {
	NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error)
	NewWriter(ctx context.Context, bucket, object string) io.WriteCloser
	Close() error
}

// Backend is a Google Cloud Storage backend.
// Locations have the form "bucket/object".
type Backend struct {
	objects Objects
}

// New creates a new GCS backend using application default credentials.
func New(ctx context.Context) (*Backend, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}
	return NewWithObjects(ClientObjects{Client: client}), nil
}

// NewWithObjects creates a backend on top of objects.
func NewWithObjects(objects Objects) *Backend {
	return &Backend{objects: objects}
}

// OpenReader streams the object at loc.
func (b *Backend) OpenReader(ctx context.Context, loc string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	bucket, object, err := target.SplitBucket(loc)
	if err != nil {
		return nil, err
	}

	r, err := b.objects.NewReader(ctx, bucket, object)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: gs://%s/%s", target.ErrNotFound, bucket, object)
		}
		return nil, fmt.Errorf("creating reader: %w", err)
	}
	return r, nil
}

// OpenWriter streams writes to the object at loc. The object becomes
// visible once the writer is closed. GCS objects are immutable, so
// mode.Append is not supported.
func (b *Backend) OpenWriter(ctx context.Context, loc string, m mode.Mode) (io.WriteCloser, error) {
	if m != mode.Write {
		return nil, fmt.Errorf("%w: %s on gs://%s", target.ErrUnsupportedMode, m, loc)
	}

	bucket, object, err := target.SplitBucket(loc)
	if err != nil {
		return nil, err
	}
	return b.objects.NewWriter(ctx, bucket, object), nil
}

// Close releases resources.
func (b *Backend) Close() error {
	return b.objects.Close()
}

// ClientObjects adapts a *storage.Client to Objects.
type ClientObjects struct {
	Client *storage.Client
}

// NewReader opens a reader on bucket/object.
func (c ClientObjects) NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	r, err := c.Client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// NewWriter opens a writer on bucket/object.
func (c ClientObjects) NewWriter(ctx context.Context, bucket, object string) io.WriteCloser {
	return c.Client.Bucket(bucket).Object(object).NewWriter(ctx)
}

// Close closes the underlying client.
func (c ClientObjects) Close() error {
	return c.Client.Close()
}
