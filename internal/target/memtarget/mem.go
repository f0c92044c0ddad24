// Package memtarget provides an in-memory backend for testing.
package memtarget

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// Scheme is the target scheme served by this backend.
const Scheme = "mem"

// Compile-time check that Backend implements target.Backend.
var _ target.Backend = (*Backend)(nil)

// Backend is an in-memory backend for testing.
type Backend struct {
	mu      sync.RWMutex
	objects map[string][]byte
	opened  map[string]int
	closed  map[string]int
}

// New creates a new in-memory backend.
func New() *Backend {
	return &Backend{
		objects: make(map[string][]byte),
		opened:  make(map[string]int),
		closed:  make(map[string]int),
	}
}

// Set stores data under name (for test setup).
// The data is copied to prevent caller mutations from affecting the backend.
func (b *Backend) Set(name string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[name] = bytes.Clone(data)
}

// Get returns a copy of the data stored under name.
func (b *Backend) Get(name string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.objects[name]
	return bytes.Clone(data), ok
}

// OpenHandles returns the number of handles opened on name that have not
// been closed yet.
func (b *Backend) OpenHandles(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.opened[name] - b.closed[name]
}

// OpenReader reads name from memory.
func (b *Backend) OpenReader(ctx context.Context, name string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", target.ErrNotFound, name)
	}
	b.opened[name]++
	return &reader{Reader: bytes.NewReader(data), b: b, name: name}, nil
}

// OpenWriter buffers writes and stores them under name on Close.
func (b *Backend) OpenWriter(ctx context.Context, name string, m mode.Mode) (io.WriteCloser, error) {
	if !m.CanWrite() {
		return nil, fmt.Errorf("%w: %s", target.ErrUnsupportedMode, m)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	w := &writer{b: b, name: name}
	if m == mode.Append {
		w.buf.Write(b.objects[name])
	}
	b.opened[name]++
	return w, nil
}

// Close is a no-op for the memory backend.
func (b *Backend) Close() error {
	return nil
}

type reader struct {
	*bytes.Reader
	b      *Backend
	name   string
	closed bool
}

func (r *reader) Close() error {
	if r.closed {
		return fmt.Errorf("memtarget: %s already closed", r.name)
	}
	r.closed = true
	r.b.mu.Lock()
	r.b.closed[r.name]++
	r.b.mu.Unlock()
	return nil
}

type writer struct {
	buf    bytes.Buffer
	b      *Backend
	name   string
	closed bool
}

func (w *writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("memtarget: write to closed %s", w.name)
	}
	return w.buf.Write(p)
}

func (w *writer) Close() error {
	if w.closed {
		return fmt.Errorf("memtarget: %s already closed", w.name)
	}
	w.closed = true
	w.b.mu.Lock()
	defer w.b.mu.Unlock()
	w.b.objects[w.name] = bytes.Clone(w.buf.Bytes())
	w.b.closed[w.name]++
	return nil
}
