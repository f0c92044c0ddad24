package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SkyTruth/gpsdio/internal/stats"
)

func TestCollector_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricMessagesRead, 3)
	c.SetGauge(stats.MetricSortBuffered, 10)
	c.ObserveHistogram(stats.MetricSortSeconds, 0.25)

	if got := logs.Len(); got != 3 {
		t.Fatalf("logged %d entries, want 3", got)
	}
	entry := logs.All()[0]
	if entry.Message != "counter" {
		t.Errorf("message = %q, want %q", entry.Message, "counter")
	}
	if got := entry.ContextMap()["metric"]; got != stats.MetricMessagesRead {
		t.Errorf("metric = %v, want %q", got, stats.MetricMessagesRead)
	}
	if entry.LoggerName != "stats" {
		t.Errorf("logger name = %q, want %q", entry.LoggerName, "stats")
	}
}

func TestCollector_SilentAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricMessagesRead, 1)

	if got := logs.Len(); got != 0 {
		t.Errorf("logged %d entries at info level, want 0", got)
	}
}

func TestNew_NilLogger(t *testing.T) {
	c := New(nil)
	c.IncCounter(stats.MetricMessagesRead, 1)
}
