package stats

import "sync"

// Memory keeps metrics in memory so they can be inspected, e.g. in tests or
// for a summary printed at the end of a command.
type Memory struct {
	mu           sync.Mutex
	counters     map[string]int64
	gauges       map[string]int64
	observations map[string][]float64
}

// Compile-time check that Memory implements Collector.
var _ Collector = (*Memory)(nil)

// NewMemory creates an empty in-memory collector.
func NewMemory() *Memory {
	return &Memory{
		counters:     make(map[string]int64),
		gauges:       make(map[string]int64),
		observations: make(map[string][]float64),
	}
}

func (m *Memory) IncCounter(name string, delta int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += delta
}

func (m *Memory) SetGauge(name string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = value
}

func (m *Memory) ObserveHistogram(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observations[name] = append(m.observations[name], value)
}

// Counter returns the current value of a counter.
func (m *Memory) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// Gauge returns the last value set on a gauge.
func (m *Memory) Gauge(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[name]
}

// Observations returns the number of values recorded in a histogram.
func (m *Memory) Observations(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.observations[name])
}
