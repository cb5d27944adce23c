// Package testutil provides testing utilities for splaycache.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for reproducible key workloads and
// assertions over ordered key sequences.
//
// # Random Keys
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.DistinctKeys(1000, 1_000_000) // 1000 unique keys in [0, 1e6)
//	order := rng.Perm(len(keys))              // random visiting order
//
// # Ordering
//
//	testutil.AssertStrictlyIncreasing(t, tree.Keys())
package testutil
