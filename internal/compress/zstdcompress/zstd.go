// Package zstdcompress provides a zstd compression driver.
package zstdcompress

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/SkyTruth/gpsdio/internal/compress"
)

// Name is the registered driver name.
const Name = "ZSTD"

// Compile-time check that Driver implements compress.Driver.
var _ compress.Driver = (*Driver)(nil)

// Driver implements zstd compression.
type Driver struct{}

// New returns a new zstd driver.
func New() *Driver {
	return &Driver{}
}

// Name returns "ZSTD".
func (d *Driver) Name() string {
	return Name
}

// Extensions returns "zst" and "zstd".
func (d *Driver) Extensions() []string {
	return []string{"zst", "zstd"}
}

// Reader wraps r to decompress zstd data.
func (d *Driver) Reader(r io.Reader, opts compress.Options) (io.ReadCloser, error) {
	if err := compress.CheckReadable(r); err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Writer wraps w to compress data with zstd. The "level" option is one of
// the zstd.EncoderLevel values (1 fastest .. 4 best).
func (d *Driver) Writer(w io.Writer, opts compress.Options) (io.WriteCloser, error) {
	level, err := opts.Int("level", int(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
	if err != nil {
		return nil, err
	}
	return encoder, nil
}
