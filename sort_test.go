package gpsdio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/SkyTruth/gpsdio/internal/stats"
)

func TestSort(t *testing.T) {
	src := &sliceSource{msgs: []Message{
		{"mmsi": int64(3), "seq": "a"},
		{"seq": "no mmsi"},
		{"mmsi": int64(1), "seq": "b"},
		{"mmsi": 2.0, "seq": "c"},
		{"seq": "no mmsi either"},
		{"mmsi": int64(1), "seq": "d"},
	}}

	var got []string
	for msg, err := range Messages(Sort(src, "mmsi")) {
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		got = append(got, msg["seq"].(string))
	}

	want := []string{"b", "d", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("Sort() yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sort() yielded %v, want %v", got, want)
			break
		}
	}
}

func TestSort_Timestamps(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2015, 1, d, 0, 0, 0, 0, time.UTC) }
	src := &sliceSource{msgs: []Message{
		{"mmsi": int64(7)},
		{"timestamp": day(3)},
		{"timestamp": day(1)},
		{"mmsi": int64(8)},
		{"timestamp": day(2)},
	}}

	s := Sort(src, "timestamp")
	for want := 1; want <= 3; want++ {
		msg, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if got := msg["timestamp"].(time.Time); !got.Equal(day(want)) {
			t.Errorf("timestamp = %v, want %v", got, day(want))
		}
	}
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestSort_MixedKinds(t *testing.T) {
	now := time.Now()
	values := []any{"b", now, int64(2), nil, true, 1.5, false, "a"}
	want := []any{nil, false, true, 1.5, int64(2), "a", "b", now}

	var msgs []Message
	for _, v := range values {
		msgs = append(msgs, Message{"v": v})
	}

	s := Sort(&sliceSource{msgs: msgs}, "v")
	for i, w := range want {
		msg, err := s.Next()
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		if compareValues(msg["v"], w) != 0 {
			t.Errorf("position %d = %v, want %v", i, msg["v"], w)
		}
	}
}

func TestSort_SourceError(t *testing.T) {
	src := &sliceSource{msgs: []Message{{"mmsi": int64(1)}}, err: errBroken}
	s := Sort(src, "mmsi")

	if _, err := s.Next(); !errors.Is(err, errBroken) {
		t.Errorf("Next() error = %v, want %v", err, errBroken)
	}
	if _, err := s.Next(); !errors.Is(err, errBroken) {
		t.Errorf("second Next() error = %v, want %v", err, errBroken)
	}
}

func TestOpener_Sort(t *testing.T) {
	mc := stats.NewMemory()
	o, _ := newTestOpener(t, WithStats(mc))

	src := &sliceSource{msgs: []Message{{"mmsi": int64(2)}, {"mmsi": int64(1)}, {}}}
	s := o.Sort(src, "mmsi")
	if _, err := s.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	if got := mc.Gauge(stats.MetricSortBuffered); got != 2 {
		t.Errorf("buffered gauge = %d, want 2", got)
	}
	if got := mc.Observations(stats.MetricSortSeconds); got != 1 {
		t.Errorf("duration observations = %d, want 1", got)
	}
}
