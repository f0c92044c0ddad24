package bzip2compress

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/SkyTruth/gpsdio/internal/compress"
)

func TestDriver_Reader(t *testing.T) {
	f, err := os.Open("testdata/sample.json.bz2")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	reader, err := New().Reader(f, nil)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("decompressed %d lines, want 2", got)
	}
	if !strings.Contains(string(data), "366268061") {
		t.Errorf("decompressed data = %q, want mmsi 366268061", data)
	}
}

func roundTrip(t *testing.T, opts compress.Options, original []byte) []byte {
	t.Helper()

	var compressed bytes.Buffer
	writer, err := New().Writer(&compressed, opts)
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}
	if _, err := writer.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reader, err := New().Reader(&compressed, nil)
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
	original := bytes.Repeat([]byte(`{"type": 1, "mmsi": 366268061}`+"\n"), 500)

	for _, opts := range []compress.Options{nil, {"level": 1}, {"level": 9}} {
		if got := roundTrip(t, opts, original); !bytes.Equal(got, original) {
			t.Errorf("Round-trip with %v failed: got %d bytes, want %d", opts, len(got), len(original))
		}
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
	reader, err := New().Reader(strings.NewReader("not bzip2 data"), nil)
	if err != nil {
		return
	}
	defer reader.Close()
	if _, err := io.ReadAll(reader); err == nil {
		t.Error("ReadAll() expected error for invalid bzip2 data, got nil")
	}
}

func TestDriver_Writable(t *testing.T) {
	if !compress.Writable(New()) {
		t.Error("Writable() = false, want true")
	}
}
