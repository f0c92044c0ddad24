// Package compress provides the optional compression layer sitting between a
// raw byte handle and a container codec.
package compress

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/SkyTruth/gpsdio/internal/registry"
)

var (
	// ErrUnsupportedMode indicates a compression driver that can't operate in
	// the requested direction, e.g. a read-only codec opened for writing.
	ErrUnsupportedMode = errors.New("compress: mode not supported by driver")

	// ErrInteractiveInput indicates an attempt to decompress a terminal.
	ErrInteractiveInput = errors.New("compress: can't decompress interactive input")
)

// Driver wraps byte handles with compression.
type Driver interface {
	// Name returns the registered name (e.g., "GZIP").
	Name() string
	// Extensions returns the file extensions without dot (e.g., "gz").
	Extensions() []string
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader, opts Options) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer, opts Options) (io.WriteCloser, error)
}

// Registry maps compression names and extensions to drivers.
type Registry = registry.Registry[Driver]

// NewRegistry creates an empty compression registry.
func NewRegistry() *Registry {
	return registry.New[Driver]("compression")
}

// Options are driver specific settings, e.g. {"level": 9}.
type Options map[string]any

// Int returns the integer option key, or def if unset.
func (o Options) Int(key string, def int) (int, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("compress: option %q must be an integer, got %v", key, v)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("compress: option %q must be an integer, got %T", key, v)
	}
}

// fileHandle is satisfied by *os.File and wrappers embedding one.
type fileHandle interface {
	Fd() uintptr
	Name() string
}

// CheckReadable fails fast when r is an interactive terminal. Compressed
// input can't come from a keyboard and reading would block forever.
func CheckReadable(r io.Reader) error {
	if f, ok := r.(fileHandle); ok && term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%w: %s", ErrInteractiveInput, f.Name())
	}
	return nil
}

// Writable reports whether d supports compressing. Drivers that only
// decompress implement ReadOnly returning true.
func Writable(d Driver) bool {
	ro, ok := d.(interface{ ReadOnly() bool })
	return !ok || !ro.ReadOnly()
}
