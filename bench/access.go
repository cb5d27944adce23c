package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hupe1980/splaycache"
	"github.com/hupe1980/splaycache/memo"
	"github.com/hupe1980/splaycache/splay"
)

// DefaultAccessCacheSize is the LRU/ARC capacity used by RunAccess when
// WithLRUSize is not set.
const DefaultAccessCacheSize = 1000

// AccessConfig describes a skewed read-through workload.
//
// Query keys are drawn from [0, KeySpace). With probability HotRatio a key
// is taken from the first HotKeys keys instead, which gives the workload the
// temporal locality that caches exploit.
type AccessConfig struct {
	Queries  int
	KeySpace int
	HotKeys  int
	HotRatio float64
}

// DefaultAccessConfig returns a 50k-query workload over 100k keys.
func DefaultAccessConfig() AccessConfig {
	return AccessConfig{
		Queries:  50_000,
		KeySpace: 100_000,
		HotKeys:  1_000,
		HotRatio: 0.7,
	}
}

// Validate checks the workload dimensions.
func (c AccessConfig) Validate() error {
	if c.Queries <= 0 {
		return splaycache.NewInvalidConfig("queries", c.Queries, splaycache.ErrInvalidWorkload)
	}
	if c.KeySpace <= 0 {
		return splaycache.NewInvalidConfig("key space", c.KeySpace, splaycache.ErrInvalidWorkload)
	}
	if c.HotKeys < 0 || c.HotKeys > c.KeySpace {
		return splaycache.NewInvalidConfig("hot keys", c.HotKeys, splaycache.ErrInvalidRange)
	}
	if !(c.HotRatio >= 0 && c.HotRatio <= 1) {
		return fmt.Errorf("invalid hot ratio %v: %w", c.HotRatio, splaycache.ErrInvalidRange)
	}
	return nil
}

// Generate returns the query keys for seed. The same config and seed always
// produce the same sequence.
func (c AccessConfig) Generate(seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	keys := make([]int, c.Queries)
	for i := range keys {
		if c.HotKeys > 0 && r.Float64() < c.HotRatio {
			keys[i] = r.IntN(c.HotKeys)
		} else {
			keys[i] = r.IntN(c.KeySpace)
		}
	}
	return keys
}

// AccessResult summarizes one cache's run of an access workload.
type AccessResult struct {
	Cache    string
	Hits     int
	Misses   int
	Len      int
	Duration time.Duration
}

// HitRatio returns hits / (hits + misses).
func (r AccessResult) HitRatio() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total)
}

// RunAccess replays one generated workload against a splay tree, an LRU cache
// and an ARC cache, in that order.
//
// Every query reads through the cache: a miss loads the value from a backing
// slice and stores it.
func RunAccess(ctx context.Context, cfg AccessConfig, opts ...Option) ([]AccessResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	logger := o.logger.WithWorkload("access")

	size, err := o.cacheSize(DefaultAccessCacheSize)
	if err != nil {
		return nil, err
	}

	lruCache, err := memo.NewLRUCache[int, int](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	arcCache, err := memo.NewARCCache[int, int](size)
	if err != nil {
		return nil, fmt.Errorf("create arc cache: %w", err)
	}

	caches := []struct {
		name  string
		cache memo.Cache[int, int]
	}{
		{CacheSplay, memo.NewSplayCache(splay.New[int, int]())},
		{CacheLRU, lruCache},
		{CacheARC, arcCache},
	}

	backing := make([]int, cfg.KeySpace)
	for i := range backing {
		backing[i] = i * i
	}
	queries := cfg.Generate(o.seed)

	results := make([]AccessResult, 0, len(caches))
	for _, c := range caches {
		if err := ctx.Err(); err != nil {
			logger.LogSweep(ctx, "access", len(results), err)
			return results, err
		}

		res := AccessResult{Cache: c.name}

		start := o.now()
		for _, k := range queries {
			if _, ok := c.cache.Get(k); ok {
				res.Hits++
				continue
			}
			res.Misses++
			c.cache.Put(k, backing[k])
		}
		res.Duration = o.since(start)
		res.Len = c.cache.Len()

		o.metrics.RecordAccess(c.name, res.Hits, res.Misses, res.Duration)
		logger.LogAccess(ctx, c.name, res.Hits, res.Misses, res.Duration)

		results = append(results, res)
	}

	logger.LogSweep(ctx, "access", len(results), nil)
	return results, nil
}
