package msgpackdriver

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

func TestDriver_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := New().NewWriter(&buf, nil)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	ts := time.Date(2015, 1, 1, 12, 30, 0, 0, time.UTC)
	msgs := []map[string]any{
		{"type": 1, "mmsi": 366268061, "lat": 37.5, "shipname": "FAKE"},
		{"type": 4, "timestamp": ts},
	}
	for _, m := range msgs {
		if err := w.Write(m); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := New().NewReader(&buf, nil)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	got, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got["mmsi"] != int64(366268061) {
		t.Errorf("mmsi = %#v, want int64(366268061)", got["mmsi"])
	}
	if got["lat"] != 37.5 {
		t.Errorf("lat = %#v, want 37.5", got["lat"])
	}
	if got["shipname"] != "FAKE" {
		t.Errorf("shipname = %#v, want %q", got["shipname"], "FAKE")
	}

	got, err = r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	gotTS, ok := got["timestamp"].(time.Time)
	if !ok || !gotTS.Equal(ts) {
		t.Errorf("timestamp = %#v, want %v", got["timestamp"], ts)
	}

	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end error = %v, want io.EOF", err)
	}
}

func TestReader_Truncated(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New().NewWriter(&buf, nil)
	w.Write(map[string]any{"type": 1, "shipname": "A LONG SHIP NAME"})
	w.Close()

	truncated := buf.Bytes()[:buf.Len()-4]
	r, _ := New().NewReader(bytes.NewReader(truncated), nil)

	_, err := r.Read()
	if !gpserr.IsCodec(err) {
		t.Fatalf("Read() error = %v, want codec error", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Read() error = %v, want io.ErrUnexpectedEOF", err)
	}

	// The decoder lost its place; the stream ends after one report.
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("Read() after failure error = %v, want io.EOF", err)
	}
}

func TestReader_TruncatedTrailingRecord(t *testing.T) {
	var buf bytes.Buffer
	w, _ := New().NewWriter(&buf, nil)
	w.Write(map[string]any{"mmsi": 1, "shipname": "ALPHA"})
	w.Write(map[string]any{"mmsi": 2, "shipname": "BRAVO"})
	w.Close()

	truncated := buf.Bytes()[:buf.Len()-3]
	r, _ := New().NewReader(bytes.NewReader(truncated), nil)

	got, err := r.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got["mmsi"] != int64(1) {
		t.Errorf("mmsi = %#v, want int64(1)", got["mmsi"])
	}

	_, err = r.Read()
	if !gpserr.IsCodec(err) {
		t.Fatalf("Read() error = %v, want codec error", err)
	}
	if c := gpserr.ClassOf(err); c != gpserr.ClassCodec {
		t.Errorf("ClassOf() = %v, want %v", c, gpserr.ClassCodec)
	}
}

func TestReader_Empty(t *testing.T) {
	r, _ := New().NewReader(bytes.NewReader(nil), nil)
	if _, err := r.Read(); !errors.Is(err, io.EOF) || gpserr.IsCodec(err) {
		t.Errorf("Read() error = %v, want io.EOF", err)
	}
}
