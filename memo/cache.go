package memo

import (
	"cmp"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hupe1980/splaycache/splay"
)

// Cache is the minimal key/value store a memoized function needs.
type Cache[K comparable, V any] interface {
	// Get returns the cached value for key. ok=false if missing.
	Get(key K) (value V, ok bool)
	// Put stores value for key. Implementations decide whether an existing
	// entry is replaced.
	Put(key K, value V)
	// Len returns the number of cached entries.
	Len() int
}

// SplayCache adapts a splay tree to Cache.
// Put never replaces an existing entry; the first stored value wins.
type SplayCache[K cmp.Ordered, V any] struct {
	tree *splay.Tree[K, V]
}

// NewSplayCache wraps tree. If tree is nil a new empty tree is used.
func NewSplayCache[K cmp.Ordered, V any](tree *splay.Tree[K, V]) *SplayCache[K, V] {
	if tree == nil {
		tree = splay.New[K, V]()
	}
	return &SplayCache[K, V]{tree: tree}
}

// Get implements Cache.
func (c *SplayCache[K, V]) Get(key K) (V, bool) { return c.tree.Search(key) }

// Put implements Cache.
func (c *SplayCache[K, V]) Put(key K, value V) { c.tree.Insert(key, value) }

// Len implements Cache.
func (c *SplayCache[K, V]) Len() int { return c.tree.Len() }

// Tree returns the underlying tree.
func (c *SplayCache[K, V]) Tree() *splay.Tree[K, V] { return c.tree }

// LRUCache adapts a fixed-size hashicorp LRU cache to Cache.
type LRUCache[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

// NewLRUCache creates an LRU cache holding at most size entries.
func NewLRUCache[K comparable, V any](size int) (*LRUCache[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache[K, V]{cache: c}, nil
}

// Get implements Cache.
func (c *LRUCache[K, V]) Get(key K) (V, bool) { return c.cache.Get(key) }

// Put implements Cache. An existing entry is replaced and marked recent.
func (c *LRUCache[K, V]) Put(key K, value V) { c.cache.Add(key, value) }

// Len implements Cache.
func (c *LRUCache[K, V]) Len() int { return c.cache.Len() }

// Purge drops all entries.
func (c *LRUCache[K, V]) Purge() { c.cache.Purge() }

// ARCCache adapts a hashicorp adaptive replacement cache to Cache.
type ARCCache[K comparable, V any] struct {
	cache *arc.ARCCache[K, V]
}

// NewARCCache creates an ARC cache holding at most size entries.
func NewARCCache[K comparable, V any](size int) (*ARCCache[K, V], error) {
	c, err := arc.NewARC[K, V](size)
	if err != nil {
		return nil, err
	}
	return &ARCCache[K, V]{cache: c}, nil
}

// Get implements Cache.
func (c *ARCCache[K, V]) Get(key K) (V, bool) { return c.cache.Get(key) }

// Put implements Cache.
func (c *ARCCache[K, V]) Put(key K, value V) { c.cache.Add(key, value) }

// Len implements Cache.
func (c *ARCCache[K, V]) Len() int { return c.cache.Len() }

// Purge drops all entries.
func (c *ARCCache[K, V]) Purge() { c.cache.Purge() }

var (
	_ Cache[int, int] = (*SplayCache[int, int])(nil)
	_ Cache[int, int] = (*LRUCache[int, int])(nil)
	_ Cache[int, int] = (*ARCCache[int, int])(nil)
)
