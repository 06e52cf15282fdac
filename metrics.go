package indexheap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPush is called after each push operation.
	RecordPush(duration time.Duration, err error)

	// RecordPop is called after each pop operation. found is false when the
	// heap was empty.
	RecordPop(duration time.Duration, found bool)

	// RecordUpdate is called after each update operation.
	RecordUpdate(duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	RecordSearch(duration time.Duration, found bool)

	// RecordGrow is called whenever the heap array doubles.
	RecordGrow(newCount int)

	// RecordRehash is called whenever the side-index grows to the next prime.
	RecordRehash(newCount int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(time.Duration, error)   {}
func (NoopMetricsCollector) RecordPop(time.Duration, bool)     {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(time.Duration, bool)  {}
func (NoopMetricsCollector) RecordGrow(int)                    {}
func (NoopMetricsCollector) RecordRehash(int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	PushErrors     atomic.Int64
	PushTotalNanos atomic.Int64
	PopCount       atomic.Int64
	PopMisses      atomic.Int64
	UpdateCount    atomic.Int64
	UpdateErrors   atomic.Int64
	SearchCount    atomic.Int64
	SearchMisses   atomic.Int64
	GrowCount      atomic.Int64
	RehashCount    atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(duration time.Duration, err error) {
	b.PushCount.Add(1)
	b.PushTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPop(_ time.Duration, found bool) {
	b.PopCount.Add(1)
	if !found {
		b.PopMisses.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(_ time.Duration, err error) {
	b.UpdateCount.Add(1)
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ time.Duration, found bool) {
	b.SearchCount.Add(1)
	if !found {
		b.SearchMisses.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(int) { b.GrowCount.Add(1) }

// RecordRehash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRehash(int) { b.RehashCount.Add(1) }

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PushCount:    b.PushCount.Load(),
		PushErrors:   b.PushErrors.Load(),
		PushAvgNanos: b.getAvgPushNanos(),
		PopCount:     b.PopCount.Load(),
		PopMisses:    b.PopMisses.Load(),
		UpdateCount:  b.UpdateCount.Load(),
		UpdateErrors: b.UpdateErrors.Load(),
		SearchCount:  b.SearchCount.Load(),
		SearchMisses: b.SearchMisses.Load(),
		GrowCount:    b.GrowCount.Load(),
		RehashCount:  b.RehashCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPushNanos() int64 {
	count := b.PushCount.Load()
	if count == 0 {
		return 0
	}
	return b.PushTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PushCount    int64
	PushErrors   int64
	PushAvgNanos int64
	PopCount     int64
	PopMisses    int64
	UpdateCount  int64
	UpdateErrors int64
	SearchCount  int64
	SearchMisses int64
	GrowCount    int64
	RehashCount  int64
}
