package bench

import (
	"time"

	"github.com/hupe1980/splaycache"
)

type options struct {
	logger  *splaycache.Logger
	metrics splaycache.MetricsCollector
	now     func() time.Time
	lruSize int
	seed    uint64
}

// Option configures a benchmark run.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *splaycache.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = splaycache.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, splaycache.NoopMetricsCollector is used.
func WithMetricsCollector(m splaycache.MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = splaycache.NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLRUSize sets the capacity of the LRU and ARC baselines.
//
// Zero selects a per-workload default: large enough to never evict during
// RunFibonacci, DefaultAccessCacheSize for RunAccess.
func WithLRUSize(n int) Option {
	return func(o *options) {
		o.lruSize = n
	}
}

// WithSeed sets the seed used to generate access workloads.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:  splaycache.NoopLogger(),
		metrics: splaycache.NoopMetricsCollector{},
		now:     time.Now,
		seed:    1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) cacheSize(fallback int) (int, error) {
	switch {
	case o.lruSize < 0:
		return 0, splaycache.NewInvalidConfig("lru size", o.lruSize, splaycache.ErrInvalidCapacity)
	case o.lruSize == 0:
		return fallback, nil
	default:
		return o.lruSize, nil
	}
}

// since returns the time elapsed since start according to the configured clock.
func (o *options) since(start time.Time) time.Duration {
	return o.now().Sub(start)
}
