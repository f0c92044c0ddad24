package gzipcompress

import (
	"bytes"
	"io"
	"testing"

	"github.com/SkyTruth/gpsdio/internal/compress"
)

func TestDriver_NameAndExtensions(t *testing.T) {
	d := New()
	if got := d.Name(); got != "GZIP" {
		t.Errorf("Name() = %q, want %q", got, "GZIP")
	}
	if got := d.Extensions(); len(got) != 1 || got[0] != "gz" {
		t.Errorf("Extensions() = %v, want [gz]", got)
	}
}

func roundTrip(t *testing.T, d *Driver, opts compress.Options, original []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	writer, err := d.Writer(&compressed, opts)
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}
	if _, err := writer.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reader, err := d.Reader(&compressed, nil)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return decompressed
}

func TestDriver_RoundTrip(t *testing.T) {
	original := []byte(`{"type": 1, "mmsi": 366268061}` + "\n")

	got := roundTrip(t, New(), nil, original)
	if !bytes.Equal(got, original) {
		t.Errorf("Round-trip failed: got %q, want %q", got, original)
	}
}

func TestDriver_RoundTrip_Level(t *testing.T) {
	original := bytes.Repeat([]byte(`{"type": 1}`+"\n"), 1000)

	got := roundTrip(t, New(), compress.Options{"level": 9}, original)
	if !bytes.Equal(got, original) {
		t.Error("Round-trip failed at level 9")
	}
}

func TestDriver_Writer_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New().Writer(&buf, compress.Options{"level": "max"}); err == nil {
		t.Error("Writer() expected error for non-integer level, got nil")
	}
	if _, err := New().Writer(&buf, compress.Options{"level": 42}); err == nil {
		t.Error("Writer() expected error for out of range level, got nil")
	}
}

func TestDriver_Reader_InvalidData(t *testing.T) {
	_, err := New().Reader(bytes.NewReader([]byte("not gzip data")), nil)
	if err == nil {
		t.Error("Reader() expected error for invalid gzip data, got nil")
	}
}

func TestDriver_Writable(t *testing.T) {
	if !compress.Writable(New()) {
		t.Error("Writable() = false, want true")
	}
}
