package testutil

import (
	"cmp"
	"iter"
	"math/rand"
	"sync"

	"github.com/stretchr/testify/assert"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Keys returns n keys drawn uniformly from [0,space). Duplicates are allowed.
func (r *RNG) Keys(n, space int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.rand.Intn(space)
	}
	return keys
}

// DistinctKeys returns n unique keys drawn from [0,space) in random order.
// It panics if space < n.
func (r *RNG) DistinctKeys(n, space int) []int {
	if space < n {
		panic("testutil: key space smaller than requested key count")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := r.rand.Intn(space)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// AssertStrictlyIncreasing checks that seq yields keys in strictly increasing
// order and returns how many keys it saw.
func AssertStrictlyIncreasing[K cmp.Ordered](t assert.TestingT, seq iter.Seq[K]) int {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	count := 0
	var prev K
	for k := range seq {
		if count > 0 && !assert.Less(t, prev, k, "keys out of order at position %d", count) {
			return count
		}
		prev = k
		count++
	}
	return count
}
