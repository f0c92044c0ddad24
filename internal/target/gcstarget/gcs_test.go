package gcstarget

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"cloud.google.com/go/storage"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// fakeObjects keeps objects in memory.
type fakeObjects struct {
	objects map[string][]byte
	closed  bool
}

func (f *fakeObjects) NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	data, ok := f.objects[bucket+"/"+object]
	if !ok {
		return nil, storage.ErrObjectNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeObjects) NewWriter(ctx context.Context, bucket, object string) io.WriteCloser {
	return &fakeWriter{f: f, name: bucket + "/" + object}
}

func (f *fakeObjects) Close() error {
	f.closed = true
	return nil
}

type fakeWriter struct {
	bytes.Buffer
	f    *fakeObjects
	name string
}

func (w *fakeWriter) Close() error {
	w.f.objects[w.name] = w.Bytes()
	return nil
}

func TestBackend_WriteRead(t *testing.T) {
	objects := &fakeObjects{objects: make(map[string][]byte)}
	b := NewWithObjects(objects)
	ctx := context.Background()

	w, err := b.OpenWriter(ctx, "bucket/a/b.json", mode.Write)
	if err != nil {
		t.Fatalf("OpenWriter() error = %v", err)
	}
	io.WriteString(w, "data")
	w.Close()

	r, err := b.OpenReader(ctx, "bucket/a/b.json")
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	got, _ := io.ReadAll(r)
	r.Close()
	if string(got) != "data" {
		t.Errorf("data = %q, want %q", got, "data")
	}

	if err := b.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !objects.closed {
		t.Error("Close() did not close the client")
	}
}

func TestBackend_NotFound(t *testing.T) {
	b := NewWithObjects(&fakeObjects{objects: map[string][]byte{}})

	_, err := b.OpenReader(context.Background(), "bucket/missing")
	if !errors.Is(err, target.ErrNotFound) {
		t.Errorf("OpenReader() error = %v, want ErrNotFound", err)
	}
}

func TestBackend_AppendUnsupported(t *testing.T) {
	b := NewWithObjects(&fakeObjects{objects: map[string][]byte{}})

	_, err := b.OpenWriter(context.Background(), "bucket/k", mode.Append)
	if !errors.Is(err, target.ErrUnsupportedMode) {
		t.Errorf("OpenWriter(append) error = %v, want ErrUnsupportedMode", err)
	}
}
