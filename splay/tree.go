package splay

import (
	"cmp"
	"iter"
)

// node is owned by exactly one parent (or by Tree.root). There are no
// parent pointers.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
}

// Tree is a splay tree mapping keys of type K to values of type V.
// The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert adds key with value and makes it the root.
// If key is already present the tree is only splayed; the stored value is kept.
func (t *Tree[K, V]) Insert(key K, value V) {
	if t.root == nil {
		t.root = &node[K, V]{key: key, value: value}
		t.size = 1
		return
	}

	root := splay(t.root, key)

	c := cmp.Compare(key, root.key)
	if c == 0 {
		t.root = root
		return
	}

	n := &node[K, V]{key: key, value: value}
	if c < 0 {
		n.right = root
		n.left = root.left
		root.left = nil
	} else {
		n.left = root
		n.right = root.right
		root.right = nil
	}

	t.root = n
	t.size++
}

// Search returns the value stored for key. The tree is splayed toward key
// whether or not it is found.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	t.root = splay(t.root, key)
	if t.root != nil && cmp.Compare(key, t.root.key) == 0 {
		return t.root.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present. Like Search, it splays.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Search(key)
	return ok
}

// Root returns the root entry without restructuring the tree.
func (t *Tree[K, V]) Root() (K, V, bool) {
	if t.root == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return t.root.key, t.root.value, true
}

// Len returns the number of keys in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Clear removes all entries.
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

// All returns an in-order iterator over the tree's entries.
// Iteration does not splay. The tree must not be modified during iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			n = n.right
		}
	}
}

// Keys returns an in-order iterator over the tree's keys.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
