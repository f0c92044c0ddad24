// Package msgpackdriver implements the MessagePack container: a plain
// concatenation of msgpack maps.
package msgpackdriver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/ugorji/go/codec"

	"github.com/SkyTruth/gpsdio/internal/driver"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// Name is the registered driver name.
const Name = "MsgPack"

// Compile-time check that Driver implements driver.Driver.
var _ driver.Driver = (*Driver)(nil)

// Driver implements the msgpack container.
type Driver struct{}

// New returns a new msgpack driver.
func New() *Driver {
	return &Driver{}
}

// Name returns "MsgPack".
func (d *Driver) Name() string {
	return Name
}

// Extensions returns the msgpack extensions.
func (d *Driver) Extensions() []string {
	return []string{"msg", "msgpack"}
}

func newHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.MapType = reflect.TypeOf(map[string]any(nil))
	h.RawToString = true
	h.SignedInteger = true
	h.WriteExt = true
	return h
}

// NewReader decodes consecutive msgpack maps from r.
func (d *Driver) NewReader(r io.Reader, opts driver.Options) (driver.Reader, error) {
	br := bufio.NewReader(r)
	return &Reader{r: br, dec: codec.NewDecoder(br, newHandle())}, nil
}

// NewWriter encodes msgpack maps to w.
func (d *Driver) NewWriter(w io.Writer, opts driver.Options) (driver.Writer, error) {
	bw := bufio.NewWriter(w)
	return &Writer{w: bw, enc: codec.NewEncoder(bw, newHandle())}, nil
}

// Reader decodes msgpack records.
//
// Msgpack has no record separator, so a record that fails to decode leaves
// the decoder at an unknown offset. The failure is reported once as a codec
// error and every later Read returns io.EOF.
type Reader struct {
	r      *bufio.Reader
	dec    *codec.Decoder
	record int
	broken bool
}

// Read returns the next record.
func (r *Reader) Read() (map[string]any, error) {
	if r.broken {
		return nil, io.EOF
	}

	// Only a clean record boundary ends the stream.
	if _, err := r.r.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}

	var msg map[string]any
	if err := r.dec.Decode(&msg); err != nil {
		r.broken = true
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, gpserr.Codec("decode", fmt.Errorf("record %d: %w", r.record+1, err))
	}
	r.record++

	if msg == nil {
		return nil, gpserr.Codec("decode", fmt.Errorf("record %d: not a map", r.record))
	}
	return msg, nil
}

// Close is a no-op; the decoder holds no resources.
func (r *Reader) Close() error {
	return nil
}

// Writer encodes msgpack records.
type Writer struct {
	w   *bufio.Writer
	enc *codec.Encoder
}

// Write encodes msg.
func (w *Writer) Write(msg map[string]any) error {
	if err := w.enc.Encode(msg); err != nil {
		return gpserr.Codec("encode", err)
	}
	return nil
}

// Close flushes buffered records.
func (w *Writer) Close() error {
	return w.w.Flush()
}
