package filetarget

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SkyTruth/gpsdio/internal/mode"
	"github.com/SkyTruth/gpsdio/internal/target"
)

func TestBackend_WriteAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	b := New()
	ctx := context.Background()

	for _, step := range []struct {
		m    mode.Mode
		data string
	}{
		{mode.Write, "one\n"},
		{mode.Append, "two\n"},
	} {
		w, err := b.OpenWriter(ctx, path, step.m)
		if err != nil {
			t.Fatalf("OpenWriter() error = %v", err)
		}
		io.WriteString(w, step.data)
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	}

	r, err := b.OpenReader(ctx, path)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	got, _ := io.ReadAll(r)
	if string(got) != "one\ntwo\n" {
		t.Errorf("data = %q, want %q", got, "one\ntwo\n")
	}
}

func TestBackend_WriteTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("old contents that are long\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New().OpenWriter(context.Background(), path, mode.Write)
	if err != nil {
		t.Fatalf("OpenWriter() error = %v", err)
	}
	io.WriteString(w, "new\n")
	w.Close()

	got, _ := os.ReadFile(path)
	if string(got) != "new\n" {
		t.Errorf("data = %q, want %q", got, "new\n")
	}
}

func TestBackend_NotFound(t *testing.T) {
	_, err := New().OpenReader(context.Background(), "/nonexistent/path.json")
	if !errors.Is(err, target.ErrNotFound) {
		t.Errorf("OpenReader() error = %v, want ErrNotFound", err)
	}
}

func TestBackend_Stdio(t *testing.T) {
	var stdout bytes.Buffer
	b := NewWithStdio(strings.NewReader("from stdin"), &stdout)
	ctx := context.Background()

	r, err := b.OpenReader(ctx, Stdio)
	if err != nil {
		t.Fatalf("OpenReader(-) error = %v", err)
	}
	got, _ := io.ReadAll(r)
	if string(got) != "from stdin" {
		t.Errorf("stdin = %q, want %q", got, "from stdin")
	}

	w, err := b.OpenWriter(ctx, Stdio, mode.Append)
	if err != nil {
		t.Fatalf("OpenWriter(-) error = %v", err)
	}
	io.WriteString(w, "to stdout")
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if stdout.String() != "to stdout" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "to stdout")
	}
}

func TestBackend_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().OpenReader(ctx, "whatever")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("OpenReader() error = %v, want context.Canceled", err)
	}
}
