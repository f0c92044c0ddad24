// Package gzipcompress provides a gzip compression driver.
package gzipcompress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/SkyTruth/gpsdio/internal/compress"
)

// Name is the registered driver name.
const Name = "GZIP"

// Compile-time check that Driver implements compress.Driver.
var _ compress.Driver = (*Driver)(nil)

// Driver implements gzip compression.
type Driver struct{}

// New returns a new gzip driver.
func New() *Driver {
	return &Driver{}
}

// Name returns "GZIP".
func (d *Driver) Name() string {
	return Name
}

// Extensions returns "gz".
func (d *Driver) Extensions() []string {
	return []string{"gz"}
}

// Reader wraps r to decompress gzip data.
func (d *Driver) Reader(r io.Reader, opts compress.Options) (io.ReadCloser, error) {
	if err := compress.CheckReadable(r); err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return gr, nil
}

// Writer wraps w to compress data with gzip. The "level" option selects the
// compression level.
func (d *Driver) Writer(w io.Writer, opts compress.Options) (io.WriteCloser, error) {
	level, err := opts.Int("level", gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}
	gw, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return nil, fmt.Errorf("creating gzip writer: %w", err)
	}
	return gw, nil
}
