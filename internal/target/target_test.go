package target

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		wantScheme string
		wantLoc    string
	}{
		{"data/types.json.gz", "file", "data/types.json.gz"},
		{"-", "file", "-"},
		{"file:///tmp/x.msg", "file", "/tmp/x.msg"},
		{"s3://bucket/ais/day.json", "s3", "bucket/ais/day.json"},
		{"GS://bucket/obj.msg.gz", "gs", "bucket/obj.msg.gz"},
		{"mem://scratch.json", "mem", "scratch.json"},
		{"C:\\weird://name", "file", "C:\\weird://name"},
	}
	for _, tt := range tests {
		scheme, loc := Parse(tt.in)
		if scheme != tt.wantScheme || loc != tt.wantLoc {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)", tt.in, scheme, loc, tt.wantScheme, tt.wantLoc)
		}
	}
}

func TestSplitBucket(t *testing.T) {
	bucket, key, err := SplitBucket("ais-archive/2015/01/01.json.gz")
	if err != nil {
		t.Fatalf("SplitBucket() error = %v", err)
	}
	if bucket != "ais-archive" || key != "2015/01/01.json.gz" {
		t.Errorf("SplitBucket() = (%q, %q)", bucket, key)
	}

	for _, bad := range []string{"", "bucket", "bucket/", "/key"} {
		if _, _, err := SplitBucket(bad); err == nil {
			t.Errorf("SplitBucket(%q) expected error, got nil", bad)
		}
	}
}
