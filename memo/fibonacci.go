package memo

import (
	"context"
	"math/big"
)

// Fibonacci returns the n-th Fibonacci number, reading and writing
// intermediate results through cache.
//
// Every subresult is stored exactly once per cache as long as the cache
// does not evict. Returned values may be shared with the cache and must not
// be mutated.
func Fibonacci(n int, cache Cache[int, *big.Int]) *big.Int {
	if v, ok := cache.Get(n); ok {
		return v
	}

	if n < 2 {
		v := big.NewInt(int64(n))
		cache.Put(n, v)
		return v
	}

	v := new(big.Int).Add(Fibonacci(n-1, cache), Fibonacci(n-2, cache))
	cache.Put(n, v)
	return v
}

// FibonacciContext is Fibonacci with cancellation. ctx is checked on every
// cache miss, so a cache that evicts too early to stay linear can still be
// interrupted.
func FibonacciContext(ctx context.Context, n int, cache Cache[int, *big.Int]) (*big.Int, error) {
	if v, ok := cache.Get(n); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if n < 2 {
		v := big.NewInt(int64(n))
		cache.Put(n, v)
		return v, nil
	}

	a, err := FibonacciContext(ctx, n-1, cache)
	if err != nil {
		return nil, err
	}
	b, err := FibonacciContext(ctx, n-2, cache)
	if err != nil {
		return nil, err
	}

	v := new(big.Int).Add(a, b)
	cache.Put(n, v)
	return v, nil
}
