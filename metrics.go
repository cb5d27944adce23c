package splaycache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting benchmark metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see bench.PrometheusCollector).
type MetricsCollector interface {
	// RecordFibonacci is called after each timed memoized Fibonacci call.
	// cache names the cache implementation, n is the argument.
	RecordFibonacci(cache string, n int, duration time.Duration)

	// RecordAccess is called after an access workload ran against one cache.
	RecordAccess(cache string, hits, misses int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFibonacci(string, int, time.Duration)    {}
func (NoopMetricsCollector) RecordAccess(string, int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FibonacciCount      atomic.Int64
	FibonacciTotalNanos atomic.Int64
	AccessCount         atomic.Int64
	AccessHits          atomic.Int64
	AccessMisses        atomic.Int64
	AccessTotalNanos    atomic.Int64
}

// RecordFibonacci implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFibonacci(_ string, _ int, duration time.Duration) {
	b.FibonacciCount.Add(1)
	b.FibonacciTotalNanos.Add(duration.Nanoseconds())
}

// RecordAccess implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAccess(_ string, hits, misses int, duration time.Duration) {
	b.AccessCount.Add(1)
	b.AccessHits.Add(int64(hits))
	b.AccessMisses.Add(int64(misses))
	b.AccessTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FibonacciCount:    b.FibonacciCount.Load(),
		FibonacciAvgNanos: avg(b.FibonacciTotalNanos.Load(), b.FibonacciCount.Load()),
		AccessCount:       b.AccessCount.Load(),
		AccessHits:        b.AccessHits.Load(),
		AccessMisses:      b.AccessMisses.Load(),
		AccessAvgNanos:    avg(b.AccessTotalNanos.Load(), b.AccessCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FibonacciCount    int64
	FibonacciAvgNanos int64
	AccessCount       int64
	AccessHits        int64
	AccessMisses      int64
	AccessAvgNanos    int64
}
