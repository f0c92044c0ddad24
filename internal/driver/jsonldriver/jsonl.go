// Package jsonldriver implements the newline delimited JSON container: one
// JSON object per line.
package jsonldriver

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/SkyTruth/gpsdio/internal/driver"
	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// Name is the registered driver name.
const Name = "NewlineJSON"

// maxLineSize bounds a single record; AIS messages are far smaller.
const maxLineSize = 4 << 20

// Compile-time check that Driver implements driver.Driver.
var _ driver.Driver = (*Driver)(nil)

// Driver implements the newline JSON container.
type Driver struct{}

// New returns a new newline JSON driver.
func New() *Driver {
	return &Driver{}
}

// Name returns "NewlineJSON".
func (d *Driver) Name() string {
	return Name
}

// Extensions returns the newline JSON extensions.
func (d *Driver) Extensions() []string {
	return []string{"json", "jsonl", "ndjson", "nv.json"}
}

// NewReader decodes one message per non-blank line of r.
func (d *Driver) NewReader(r io.Reader, opts driver.Options) (driver.Reader, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}, nil
}

// NewWriter encodes one message per line to w. The "sort_keys" option (default
// false) writes keys in lexical order for reproducible output.
func (d *Driver) NewWriter(w io.Writer, opts driver.Options) (driver.Writer, error) {
	return &Writer{
		w:        bufio.NewWriter(w),
		sortKeys: opts.Bool("sort_keys", false),
	}, nil
}

// Reader decodes newline JSON records.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// Read returns the next record.
func (r *Reader) Read() (map[string]any, error) {
	for r.scanner.Scan() {
		r.line++
		line := bytes.TrimSpace(r.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg, err := decodeLine(line)
		if err != nil {
			return nil, gpserr.Codec("decode", fmt.Errorf("line %d: %w", r.line, err))
		}
		return msg, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", r.line+1, err)
	}
	return nil, io.EOF
}

// Close is a no-op; the scanner holds no resources.
func (r *Reader) Close() error {
	return nil
}

func decodeLine(line []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var msg map[string]any
	if err := dec.Decode(&msg); err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, fmt.Errorf("record is not a JSON object")
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	for k, v := range msg {
		msg[k] = normalize(v)
	}
	return msg, nil
}

// normalize turns json.Number into int64 when integral and float64
// otherwise, recursing into containers.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, inner := range t {
			t[k] = normalize(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = normalize(inner)
		}
		return t
	default:
		return v
	}
}

// Writer encodes newline JSON records.
type Writer struct {
	w        *bufio.Writer
	sortKeys bool
}

// Write encodes msg as one line.
func (w *Writer) Write(msg map[string]any) error {
	var (
		data []byte
		err  error
	)
	if w.sortKeys {
		data, err = json.Marshal(msg)
	} else {
		data, err = json.MarshalWithOption(msg, json.UnorderedMap())
	}
	if err != nil {
		return gpserr.Codec("encode", err)
	}
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close flushes buffered records.
func (w *Writer) Close() error {
	return w.w.Flush()
}
