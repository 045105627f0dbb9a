package slotvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus;
// see metrics/prommetrics for a ready-made adapter.
type MetricsCollector interface {
	// RecordPush is called after each Push, Emplace, InsertAt, Replace and
	// InsertShift. err is nil if successful.
	RecordPush(duration time.Duration, err error)

	// RecordGrow is called whenever the slot buffer was reallocated.
	RecordGrow(oldCap, newCap int)

	// RecordDelete is called after each DeleteAt and DeleteKey.
	RecordDelete(duration time.Duration, err error)

	// RecordFind is called after each Find and IndexOf. found is false on
	// a miss.
	RecordFind(duration time.Duration, found bool)

	// RecordAllocFailure is called when op was aborted because the buffer
	// could not grow.
	RecordAllocFailure(op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(time.Duration, error)   {}
func (NoopMetricsCollector) RecordGrow(int, int)               {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error) {}
func (NoopMetricsCollector) RecordFind(time.Duration, bool)    {}
func (NoopMetricsCollector) RecordAllocFailure(string)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	PushErrors     atomic.Int64
	PushTotalNanos atomic.Int64
	GrowCount      atomic.Int64
	MaxCapacity    atomic.Int64
	DeleteCount    atomic.Int64
	DeleteErrors   atomic.Int64
	FindCount      atomic.Int64
	FindMisses     atomic.Int64
	AllocFailures  atomic.Int64
}

// RecordPush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPush(duration time.Duration, err error) {
	b.PushCount.Add(1)
	b.PushTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PushErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCap int) {
	b.GrowCount.Add(1)
	n := int64(newCap)
	for {
		cur := b.MaxCapacity.Load()
		if n <= cur || b.MaxCapacity.CompareAndSwap(cur, n) {
			return
		}
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(_ time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(_ time.Duration, found bool) {
	b.FindCount.Add(1)
	if !found {
		b.FindMisses.Add(1)
	}
}

// RecordAllocFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocFailure(string) {
	b.AllocFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	pushCount := b.PushCount.Load()
	var avgPush time.Duration
	if pushCount > 0 {
		avgPush = time.Duration(b.PushTotalNanos.Load() / pushCount)
	}
	return MetricsStats{
		PushCount:      pushCount,
		PushErrors:     b.PushErrors.Load(),
		AvgPushLatency: avgPush,
		GrowCount:      b.GrowCount.Load(),
		MaxCapacity:    b.MaxCapacity.Load(),
		DeleteCount:    b.DeleteCount.Load(),
		DeleteErrors:   b.DeleteErrors.Load(),
		FindCount:      b.FindCount.Load(),
		FindMisses:     b.FindMisses.Load(),
		AllocFailures:  b.AllocFailures.Load(),
	}
}

// MetricsStats is a snapshot of metrics at a point in time.
type MetricsStats struct {
	PushCount      int64
	PushErrors     int64
	AvgPushLatency time.Duration
	GrowCount      int64
	MaxCapacity    int64
	DeleteCount    int64
	DeleteErrors   int64
	FindCount      int64
	FindMisses     int64
	AllocFailures  int64
}
