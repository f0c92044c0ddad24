package gpsdio

import (
	"cmp"
	"errors"
	"io"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/SkyTruth/gpsdio/internal/stats"
)

// Compile-time check that SortIter implements Source.
var _ Source = (*SortIter)(nil)

// SortIter yields the messages of a source ordered by one field. The whole
// source is read into memory on the first call to Next.
type SortIter struct {
	src   Source
	field string
	stats stats.Collector

	drained bool
	err     error
	msgs    []Message
	pos     int
}

// Sort returns the messages of src that have field, in ascending order of
// its value. Messages lacking field are dropped. Messages with equal values
// keep their order in src.
//
// Numbers compare numerically regardless of their Go type, strings
// lexically and times chronologically. Values of different kinds are ordered
// nil, bool, number, string, time, then anything else.
func Sort(src Source, field string) *SortIter {
	return &SortIter{src: src, field: field, stats: stats.NewNoop()}
}

// Sort is like the package-level Sort, reporting to the Opener's stats
// collector.
func (o *Opener) Sort(src Source, field string) *SortIter {
	return &SortIter{src: src, field: field, stats: o.cfg.stats}
}

// Next returns the next message in order, or io.EOF once all are returned.
// An error reading the source aborts the sort and is returned by this and
// every later call.
func (s *SortIter) Next() (Message, error) {
	if !s.drained {
		s.drain()
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.pos >= len(s.msgs) {
		return nil, io.EOF
	}
	msg := s.msgs[s.pos]
	s.msgs[s.pos] = nil
	s.pos++
	return msg, nil
}

func (s *SortIter) drain() {
	s.drained = true
	start := time.Now()

	for {
		msg, err := s.src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.err = err
			s.msgs = nil
			return
		}
		if _, ok := msg[s.field]; ok {
			s.msgs = append(s.msgs, msg)
		}
	}

	slices.SortStableFunc(s.msgs, func(a, b Message) int {
		return compareValues(a[s.field], b[s.field])
	})

	s.stats.SetGauge(stats.MetricSortBuffered, int64(len(s.msgs)))
	s.stats.ObserveHistogram(stats.MetricSortSeconds, time.Since(start).Seconds())
}

// Kind ranks for values of different kinds.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankTime
	rankOther
)

func rank(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case string:
		return rankString
	case time.Time:
		return rankTime
	}
	if _, ok := number(v); ok {
		return rankNumber
	}
	return rankOther
}

// compareValues orders a and b, see Sort.
func compareValues(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case rankNumber:
		x, _ := number(a)
		y, _ := number(b)
		return cmp.Compare(x, y)
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return 0
}

// number returns v as a float64 if it holds a numeric kind.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
