package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

const fixture = "../../testdata/types.json.bz2"

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single execution.
	verbose, schemaFiles, inputDriver, inputCompression, skipFailures = false, nil, "", "", false
	catFilters, catSort, catOutputDriver, catOutputCompression, catAppend = nil, "", "", "", false
	headCount, infoJSON, maxIssues = 10, false, 0

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatAndInfo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sorted.msg.gz")

	if _, err := run(t, "", "cat", "--sort", "mmsi", fixture, out); err != nil {
		t.Fatalf("cat error = %v", err)
	}

	printed, err := run(t, "", "info", "--json", out)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}

	var sum summary
	if err := json.Unmarshal([]byte(printed), &sum); err != nil {
		t.Fatalf("decoding %q: %v", printed, err)
	}
	if sum.Messages != 2 {
		t.Errorf("Messages = %d, want 2", sum.Messages)
	}
	if sum.Vessels != 2 {
		t.Errorf("Vessels = %d, want 2", sum.Vessels)
	}
	if sum.Types[1] != 1 || sum.Types[5] != 1 {
		t.Errorf("Types = %v, want one each of 1 and 5", sum.Types)
	}
	if sum.FirstTime == nil || sum.LastTime == nil || !sum.FirstTime.Before(*sum.LastTime) {
		t.Errorf("time span = %v to %v, want two distinct days", sum.FirstTime, sum.LastTime)
	}
}

func TestCat_FilterStdio(t *testing.T) {
	in := "{\"type\":1,\"mmsi\":1}\n{\"type\":1,\"mmsi\":2}\n{\"type\":5,\"mmsi\":3}\n"

	got, err := run(t, in, "cat", "--filter", "mmsi >= 2", "--filter", "type == 1")
	if err != nil {
		t.Fatalf("cat error = %v", err)
	}
	if got != "{\"type\":1,\"mmsi\":2}\n" && got != "{\"mmsi\":2,\"type\":1}\n" {
		t.Errorf("cat printed %q, want the mmsi 2 record", got)
	}
}

func TestCat_BadFilter(t *testing.T) {
	if _, err := run(t, "", "cat", "--filter", "len(shipname) > 0", fixture, "-"); err == nil {
		t.Error("cat with a forbidden filter succeeded")
	}
}

func TestHead(t *testing.T) {
	got, err := run(t, "", "head", "-n", "1", fixture)
	if err != nil {
		t.Fatalf("head error = %v", err)
	}
	want := "{\"mmsi\":366268061,\"timestamp\":\"2015-01-01T00:00:00.000000Z\",\"type\":1}\n"
	if got != want {
		t.Errorf("head printed %q, want %q", got, want)
	}
}

func TestTypes(t *testing.T) {
	got, err := run(t, "", "types")
	if err != nil {
		t.Fatalf("types error = %v", err)
	}
	if !strings.Contains(got, "  5  Static and Voyage Related Data\n") {
		t.Errorf("types output missing type 5:\n%s", got)
	}

	got, err = run(t, "", "types", "5")
	if err != nil {
		t.Fatalf("types 5 error = %v", err)
	}
	if !strings.Contains(got, "shipname") {
		t.Errorf("types 5 output missing shipname:\n%s", got)
	}

	if _, err := run(t, "", "types", "99"); err == nil {
		t.Error("types 99 succeeded, want unknown type error")
	}
}

func TestValidate(t *testing.T) {
	got, err := run(t, "", "validate", fixture)
	if err != nil {
		t.Fatalf("validate error = %v\n%s", err, got)
	}
	if !strings.Contains(got, "2 records OK") {
		t.Errorf("validate printed %q", got)
	}

	in := "{\"type\":1,\"mmsi\":1,\"repeat\":9}\nnot json\n"
	got, err = run(t, in, "validate")
	if err != errInvalid {
		t.Fatalf("validate error = %v, want %v", err, errInvalid)
	}
	if !strings.Contains(got, "record 1: repeat=9: invalid value") {
		t.Errorf("validate output missing the repeat issue:\n%s", got)
	}
	if !strings.Contains(got, "2 problems in 2 records") {
		t.Errorf("validate output missing the summary:\n%s", got)
	}
}
