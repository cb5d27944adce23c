package memo

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/hupe1980/splaycache/splay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibonacci_SplayTree(t *testing.T) {
	tree := splay.New[int, *big.Int]()

	got := Fibonacci(10, NewSplayCache(tree))
	assert.Equal(t, int64(55), got.Int64())
	assert.Equal(t, 11, tree.Len(), "every n in [0,10] cached once")

	for n, want := range map[int]int64{10: 55, 5: 5, 0: 0, 1: 1, 2: 1} {
		v, ok := tree.Search(n)
		require.True(t, ok, "n=%d", n)
		assert.Equal(t, want, v.Int64(), "n=%d", n)
		root, _, _ := tree.Root()
		assert.Equal(t, n, root)
	}
}

func TestFibonacci_CacheHitShortCircuits(t *testing.T) {
	c := &countingCache{Cache: NewSplayCache[int, *big.Int](nil)}

	Fibonacci(30, c)
	puts := c.puts
	assert.Equal(t, 31, puts)

	Fibonacci(30, c)
	assert.Equal(t, puts, c.puts, "second call is a pure cache hit")

	Fibonacci(32, c)
	assert.Equal(t, puts+2, c.puts)
}

func TestFibonacci_Implementations(t *testing.T) {
	want, ok := new(big.Int).SetString("43466557686937456435688527675040625802564660517371780402481729089536555417949051890403879840079255169295922593080322634775209689623239873322471161642996440906533187938298969649928516003704476137795166849228875", 10)
	require.True(t, ok)

	lruCache, err := NewLRUCache[int, *big.Int](2048)
	require.NoError(t, err)
	arcCache, err := NewARCCache[int, *big.Int](2048)
	require.NoError(t, err)

	tests := []struct {
		name  string
		cache Cache[int, *big.Int]
	}{
		{"splay", NewSplayCache[int, *big.Int](nil)},
		{"lru", lruCache},
		{"arc", arcCache},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fibonacci(1000, tt.cache)
			assert.Equal(t, 0, want.Cmp(got), "fib(1000) = %s", got)
			assert.Equal(t, 1001, tt.cache.Len())
		})
	}
}

func TestFibonacci_SmallLRUStillCorrect(t *testing.T) {
	c, err := NewLRUCache[int, *big.Int](3)
	require.NoError(t, err)

	got := Fibonacci(25, c)

	assert.Equal(t, int64(75025), got.Int64())
	assert.Equal(t, 3, c.Len())
}

func TestFibonacciContext(t *testing.T) {
	t.Run("matches Fibonacci", func(t *testing.T) {
		c := NewSplayCache[int, *big.Int](nil)

		got, err := FibonacciContext(context.Background(), 92, c)
		require.NoError(t, err)
		assert.Equal(t, 0, Fibonacci(92, NewSplayCache[int, *big.Int](nil)).Cmp(got))
		assert.Equal(t, 93, c.Len())
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := FibonacciContext(ctx, 10, NewSplayCache[int, *big.Int](nil))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})

	t.Run("cached value ignores canceled context", func(t *testing.T) {
		c := NewSplayCache[int, *big.Int](nil)
		Fibonacci(10, c)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := FibonacciContext(ctx, 10, c)
		require.NoError(t, err)
		assert.Equal(t, int64(55), got.Int64())
	})

	t.Run("deadline interrupts evicting cache", func(t *testing.T) {
		c, err := NewLRUCache[int, *big.Int](1)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err = FibonacciContext(ctx, 200, c)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestFibonacci_Int64Boundary(t *testing.T) {
	got := Fibonacci(92, NewSplayCache[int, *big.Int](nil))

	require.True(t, got.IsInt64())
	assert.Equal(t, int64(7540113804746346429), got.Int64())
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := NewLRUCache[int, int](0)
	assert.Error(t, err)

	_, err = NewARCCache[int, int](0)
	assert.Error(t, err)
}

func TestSplayCache_FirstValueWins(t *testing.T) {
	c := NewSplayCache[string, int](nil)
	c.Put("k", 1)
	c.Put("k", 2)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Tree().Len())
}

func TestLRUCache_Replaces(t *testing.T) {
	c, err := NewLRUCache[string, int](4)
	require.NoError(t, err)

	c.Put("k", 1)
	c.Put("k", 2)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

type countingCache struct {
	Cache[int, *big.Int]
	puts int
}

func (c *countingCache) Put(key int, value *big.Int) {
	c.puts++
	c.Cache.Put(key, value)
}

func BenchmarkFibonacci(b *testing.B) {
	b.Run("splay", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Fibonacci(500, NewSplayCache[int, *big.Int](nil))
		}
	})

	b.Run("lru", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			c, _ := NewLRUCache[int, *big.Int](1024)
			Fibonacci(500, c)
		}
	})
}
