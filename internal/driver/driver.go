// Package driver defines container codecs: components turning a byte stream
// into a sequence of raw message mappings and back.
package driver

import (
	"io"

	"github.com/SkyTruth/gpsdio/internal/registry"
)

// Reader produces one raw message per call to Read and returns io.EOF once
// the stream is exhausted. A record that can't be decoded is reported as a
// *gpserr.CodecError; any other error means the stream itself is unusable.
type Reader interface {
	Read() (map[string]any, error)
	// Close releases decoder state. It does not close the underlying handle.
	Close() error
}

// Writer accepts raw messages and serializes them.
type Writer interface {
	Write(msg map[string]any) error
	// Close flushes buffered output. It does not close the underlying handle.
	Close() error
}

// Driver opens readers and writers for one container format.
type Driver interface {
	// Name returns the registered name (e.g., "NewlineJSON").
	Name() string
	// Extensions returns the file extensions without dot (e.g., "json").
	Extensions() []string
	// NewReader decodes messages from r.
	NewReader(r io.Reader, opts Options) (Reader, error)
	// NewWriter encodes messages to w.
	NewWriter(w io.Writer, opts Options) (Writer, error)
}

// Registry maps container names and extensions to drivers.
type Registry = registry.Registry[Driver]

// NewRegistry creates an empty container driver registry.
func NewRegistry() *Registry {
	return registry.New[Driver]("driver")
}

// Options are driver specific settings.
type Options map[string]any

// Bool returns the boolean option key, or def if unset.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}
