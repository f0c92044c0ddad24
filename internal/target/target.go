// Package target defines the byte-handle backends a message stream can be
// opened on: local files, object stores and in-memory buffers.
package target

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/SkyTruth/gpsdio/internal/mode"
)

var (
	// ErrNotFound is returned when a target opened for reading does not exist.
	ErrNotFound = errors.New("target: not found")

	// ErrUnsupportedMode is returned by backends that can't open a target in
	// the requested mode, e.g. appending to an immutable object.
	ErrUnsupportedMode = errors.New("target: mode not supported by backend")
)

// SchemeFile is the scheme of plain paths.
const SchemeFile = "file"

// Backend opens byte handles for locations within one scheme.
// Implementations handle path formats and storage details internally.
type Backend interface {
	// OpenReader opens loc for reading.
	OpenReader(ctx context.Context, loc string) (io.ReadCloser, error)

	// OpenWriter opens loc for writing in mode m (mode.Write or mode.Append).
	// Data is only guaranteed to be persisted once the writer is closed.
	OpenWriter(ctx context.Context, loc string, m mode.Mode) (io.WriteCloser, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Parse splits a target into its scheme and the backend specific location.
// Plain paths and "-" belong to the file scheme.
func Parse(target string) (scheme, loc string) {
	if i := strings.Index(target, "://"); i > 0 {
		scheme = strings.ToLower(target[:i])
		if isScheme(scheme) {
			return scheme, target[i+3:]
		}
	}
	return SchemeFile, target
}

func isScheme(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}

// SplitBucket splits an object store location "bucket/key" in two.
func SplitBucket(loc string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(loc, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", errors.New("target: location must be bucket/key, got " + loc)
	}
	return bucket, key, nil
}
