package bench

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/hupe1980/splaycache"
	"github.com/hupe1980/splaycache/memo"
	"github.com/hupe1980/splaycache/splay"
)

// Cache implementation names used in results, logs and metrics labels.
const (
	CacheSplay = "splay"
	CacheLRU   = "lru"
	CacheARC   = "arc"
)

// MinFibonacciCacheSize is the smallest LRU/ARC capacity RunFibonacci
// accepts. Below it the memo evicts fib(n-2) before it is read back and the
// recursion turns exponential.
const MinFibonacciCacheSize = 3

// FibonacciConfig describes a sweep of n over [0, Max) in Step increments.
type FibonacciConfig struct {
	Max  int
	Step int
}

// DefaultFibonacciConfig matches the classic comparison: n = 0, 50, ..., 950.
func DefaultFibonacciConfig() FibonacciConfig {
	return FibonacciConfig{Max: 1000, Step: 50}
}

// Validate checks the sweep bounds.
func (c FibonacciConfig) Validate() error {
	if c.Step <= 0 {
		return splaycache.NewInvalidConfig("step", c.Step, splaycache.ErrInvalidStep)
	}
	if c.Max < 0 {
		return splaycache.NewInvalidConfig("max", c.Max, splaycache.ErrInvalidRange)
	}
	return nil
}

// Values returns the n values visited by the sweep.
func (c FibonacciConfig) Values() []int {
	if c.Step <= 0 || c.Max <= 0 {
		return nil
	}
	ns := make([]int, 0, (c.Max+c.Step-1)/c.Step)
	for n := 0; n < c.Max; n += c.Step {
		ns = append(ns, n)
	}
	return ns
}

// FibonacciRow holds the wall-clock duration of one Fibonacci(n) call per cache.
type FibonacciRow struct {
	N     int
	Value *big.Int
	LRU   time.Duration
	ARC   time.Duration
	Splay time.Duration
}

// RunFibonacci runs the memoized Fibonacci sweep described by cfg.
//
// The LRU and ARC caches live for the whole sweep, so later rows reuse
// earlier results. Each row builds a new splay tree from scratch. ctx is
// honored inside each timed call, and the rows completed before a
// cancellation are returned with the error.
func RunFibonacci(ctx context.Context, cfg FibonacciConfig, opts ...Option) ([]FibonacciRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	logger := o.logger.WithWorkload("fibonacci")

	size, err := o.cacheSize(max(cfg.Max+1, MinFibonacciCacheSize))
	if err != nil {
		return nil, err
	}
	if size < MinFibonacciCacheSize {
		return nil, splaycache.NewInvalidConfig("lru size", size, splaycache.ErrInvalidCapacity)
	}

	lruCache, err := memo.NewLRUCache[int, *big.Int](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	arcCache, err := memo.NewARCCache[int, *big.Int](size)
	if err != nil {
		return nil, fmt.Errorf("create arc cache: %w", err)
	}

	ns := cfg.Values()
	rows := make([]FibonacciRow, 0, len(ns))

	for _, n := range ns {
		if err := ctx.Err(); err != nil {
			logger.LogSweep(ctx, "fibonacci", len(rows), err)
			return rows, err
		}

		row := FibonacciRow{N: n}
		if row.Value, row.LRU, err = o.timeFibonacci(ctx, logger, CacheLRU, n, lruCache); err != nil {
			break
		}
		if _, row.ARC, err = o.timeFibonacci(ctx, logger, CacheARC, n, arcCache); err != nil {
			break
		}

		tree := splay.New[int, *big.Int]()
		if _, row.Splay, err = o.timeFibonacci(ctx, logger, CacheSplay, n, memo.NewSplayCache(tree)); err != nil {
			break
		}

		rows = append(rows, row)
	}

	logger.LogSweep(ctx, "fibonacci", len(rows), err)
	return rows, err
}

func (o *options) timeFibonacci(ctx context.Context, logger *splaycache.Logger, name string, n int, cache memo.Cache[int, *big.Int]) (*big.Int, time.Duration, error) {
	start := o.now()
	v, err := memo.FibonacciContext(ctx, n, cache)
	d := o.since(start)
	if err != nil {
		return nil, d, err
	}

	o.metrics.RecordFibonacci(name, n, d)
	logger.LogFibonacci(ctx, name, n, d)
	return v, d, nil
}
