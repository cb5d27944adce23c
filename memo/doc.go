// Package memo implements memoized computations on top of pluggable caches.
//
// A Cache is anything with Get/Put/Len. Adapters are provided for the splay
// tree (SplayCache) and for hashicorp's LRU and ARC caches, so the same
// recursive computation can be timed against different cache policies.
//
//	tree := splay.New[int, *big.Int]()
//	f := memo.Fibonacci(90, memo.NewSplayCache(tree))
package memo
