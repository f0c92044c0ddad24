package gpsdio

import (
	"github.com/SkyTruth/gpsdio/internal/predicate"
	"github.com/SkyTruth/gpsdio/internal/stats"
)

// Compile-time check that FilterIter implements Source.
var _ Source = (*FilterIter)(nil)

// FilterIter yields the messages of a source matching every one of a set of
// expressions. It makes a single pass over the source.
type FilterIter struct {
	src      Source
	preds    []*predicate.Predicate
	stats    stats.Collector
	rejected int64
}

// Filter returns the messages of src for which every expression is true.
//
// Expressions are written in the expr language, restricted to literals,
// operators, member access and conditionals. Message fields are identifiers
// and msg is the whole message:
//
//	type in [1, 2, 3] and speed > 10
//	msg.shipname startsWith 'SEA'
//
// A message lacking a field an expression names doesn't match. Expressions
// that don't compile or use anything outside the allowed subset are a
// configuration error. With no expressions, every message matches.
func Filter(src Source, exprs ...string) (*FilterIter, error) {
	return filter(src, stats.NewNoop(), exprs)
}

// Filter is like the package-level Filter, reporting to the Opener's stats
// collector.
func (o *Opener) Filter(src Source, exprs ...string) (*FilterIter, error) {
	return filter(src, o.cfg.stats, exprs)
}

func filter(src Source, c stats.Collector, exprs []string) (*FilterIter, error) {
	f := &FilterIter{src: src, stats: c}
	for _, e := range exprs {
		p, err := predicate.Compile(e)
		if err != nil {
			return nil, err
		}
		f.preds = append(f.preds, p)
	}
	return f, nil
}

// Next returns the next matching message, or io.EOF once the source is
// exhausted. Source errors and expression evaluation errors are returned.
func (f *FilterIter) Next() (Message, error) {
	for {
		msg, err := f.src.Next()
		if err != nil {
			return nil, err
		}
		ok, err := f.match(msg)
		if err != nil {
			return nil, err
		}
		if ok {
			return msg, nil
		}
		f.rejected++
		f.stats.IncCounter(stats.MetricFilterRejected, 1)
	}
}

func (f *FilterIter) match(msg Message) (bool, error) {
	for _, p := range f.preds {
		ok, err := p.Match(msg)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Rejected returns the number of messages that did not match so far.
func (f *FilterIter) Rejected() int64 {
	return f.rejected
}
