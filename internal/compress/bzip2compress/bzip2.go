// Package bzip2compress provides a bzip2 compression driver.
package bzip2compress

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/SkyTruth/gpsdio/internal/compress"
)

// Name is the registered driver name.
const Name = "BZ2"

// Compile-time check that Driver implements compress.Driver.
var _ compress.Driver = (*Driver)(nil)

// Driver implements bzip2 compression.
type Driver struct{}

// New returns a new bzip2 driver.
func New() *Driver {
	return &Driver{}
}

// Name returns "BZ2".
func (d *Driver) Name() string {
	return Name
}

// Extensions returns "bz2".
func (d *Driver) Extensions() []string {
	return []string{"bz2"}
}

// Reader wraps r to decompress bzip2 data.
func (d *Driver) Reader(r io.Reader, opts compress.Options) (io.ReadCloser, error) {
	if err := compress.CheckReadable(r); err != nil {
		return nil, err
	}
	br, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 reader: %w", err)
	}
	return br, nil
}

// Writer wraps w to compress data with bzip2. The "level" option selects the
// block size, from 1 (100k) to 9 (900k).
func (d *Driver) Writer(w io.Writer, opts compress.Options) (io.WriteCloser, error) {
	level, err := opts.Int("level", bzip2.DefaultCompression)
	if err != nil {
		return nil, err
	}
	bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 writer: %w", err)
	}
	return bw, nil
}
