// Package filetarget implements the local filesystem backend, including the
// process's standard input and output.
package filetarget

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

// Stdio is the location denoting standard input (read) or output (write).
const Stdio = "-"

// Compile-time check that Backend implements target.Backend.
var _ target.Backend = (*Backend)(nil)

// Backend opens local files.
type Backend struct {
	stdin  io.Reader
	stdout io.Writer
}

// New creates a filesystem backend bound to the process's stdio.
func New() *Backend {
	return &Backend{stdin: os.Stdin, stdout: os.Stdout}
}

// NewWithStdio creates a filesystem backend with substitute stdio streams.
// A nil stream falls back to the process's.
func NewWithStdio(stdin io.Reader, stdout io.Writer) *Backend {
	b := New()
	if stdin != nil {
		b.stdin = stdin
	}
	if stdout != nil {
		b.stdout = stdout
	}
	return b
}

// OpenReader opens path for reading. "-" returns standard input, which is
// never closed by the returned handle.
func (b *Backend) OpenReader(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == Stdio {
		if f, ok := b.stdin.(*os.File); ok {
			return &stdinFile{f}, nil
		}
		return io.NopCloser(b.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", target.ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// OpenWriter creates or truncates path (mode.Write) or opens it for
// appending (mode.Append). "-" returns standard output, which is never
// closed by the returned handle.
func (b *Backend) OpenWriter(ctx context.Context, path string, m mode.Mode) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == Stdio {
		return nopWriteCloser{b.stdout}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE
	switch m {
	case mode.Write:
		flags |= os.O_TRUNC
	case mode.Append:
		flags |= os.O_APPEND
	default:
		return nil, fmt.Errorf("%w: %s", target.ErrUnsupportedMode, m)
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}

// Close releases any resources held by the backend.
func (b *Backend) Close() error {
	return nil
}

// stdinFile keeps the *os.File identity of stdin visible (so compression
// drivers can refuse a terminal) without closing it.
type stdinFile struct {
	*os.File
}

func (stdinFile) Close() error { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
