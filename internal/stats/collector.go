// Package stats provides a unified interface for collecting stream metrics.
package stats

// Metric names used throughout the library.
const (
	// Stream metrics.
	MetricStreamsOpened   = "gpsdio_streams_opened_total"
	MetricMessagesRead    = "gpsdio_messages_read_total"
	MetricMessagesWritten = "gpsdio_messages_written_total"
	MetricMessagesSkipped = "gpsdio_messages_skipped_total"
	MetricFailures        = "gpsdio_failures_total"

	// Transform metrics.
	MetricFilterRejected = "gpsdio_filter_rejected_total"
	MetricSortBuffered   = "gpsdio_sort_buffered"
	MetricSortSeconds    = "gpsdio_sort_duration_seconds"
)

var help = map[string]string{
	MetricStreamsOpened:   "Message streams opened.",
	MetricMessagesRead:    "Messages returned by stream reads.",
	MetricMessagesWritten: "Messages accepted by stream writes.",
	MetricMessagesSkipped: "Records dropped under the skip-failures policy.",
	MetricFailures:        "Per-record decode, encode and coercion failures.",
	MetricFilterRejected:  "Messages rejected by filter predicates.",
	MetricSortBuffered:    "Messages buffered by the most recent sort.",
	MetricSortSeconds:     "Time spent draining and sorting a source.",
}

// Help returns the description of a metric, or its name when unknown.
func Help(name string) string {
	if h, ok := help[name]; ok {
		return h
	}
	return name
}

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
