// Package splay provides a self-adjusting binary search tree keyed by any
// ordered type.
//
// Every Insert and Search restructures the tree with rotations so that the
// accessed key, when present, ends up at the root. Keys that are used often
// therefore stay close to the top, which makes the tree a good fit for
// memoization caches with strong temporal locality.
//
// # Quick Start
//
//	var t splay.Tree[int, string] // zero value is ready to use
//	t.Insert(5, "five")
//	t.Insert(3, "three")
//	v, ok := t.Search(3) // "three", true; 3 is now the root
//
// # Semantics
//
//   - Insert of an existing key is a no-op. The first value wins.
//   - Search splays even on a miss. The last node on the search path
//     becomes the root.
//   - Keys are compared with cmp.Compare, so NaN float keys sort before
//     every other value and compare equal to each other.
//
// # Complexity
//
// Each operation costs O(log n) amortized. A single call may touch the whole
// tree (for example the first Search after inserting keys in sorted order).
//
// # Concurrency
//
// Tree is not safe for concurrent use. Both Insert and Search mutate the
// tree shape, so even readers need external synchronization.
package splay
