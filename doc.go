// Package splaycache measures a splay tree used as a memoization cache.
//
// The data structure itself lives in package splay. This package carries the
// pieces shared by the harness packages: structured logging, metrics
// collection hooks, and configuration errors.
//
// # Quick Start
//
//	tree := splay.New[int, *big.Int]()
//	fib := memo.Fibonacci(500, memo.NewSplayCache(tree))
//
// To compare the tree against LRU and ARC caches:
//
//	rows, err := bench.RunFibonacci(ctx, bench.FibonacciConfig{Max: 1000, Step: 50},
//		bench.WithLogger(splaycache.NewTextLogger(slog.LevelInfo)),
//	)
//
// or from the command line:
//
//	splaybench fib --max 1000 --step 50
//	splaybench random --keys 100000 --queries 50000 --lru-size 1000
//
// # Packages
//
//   - splay: the self-adjusting binary search tree
//   - memo: Cache interface, tree/LRU/ARC adapters, memoized Fibonacci
//   - bench: workload sweeps, timing, result tables, Prometheus metrics
//   - cmd/splaybench: command line driver
package splaycache
