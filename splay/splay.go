package splay

import "cmp"

// rotateRight promotes x.left. x must have a left child.
func rotateRight[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	y.right = x
	return y
}

// rotateLeft promotes x.right. x must have a right child.
func rotateLeft[K cmp.Ordered, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	return y
}

// splay restructures the subtree at root and returns its new root. If key is
// present it becomes the root; otherwise the last node on the search path does.
//
// The zig-zig case is checked before zig-zag. Changing that order still yields
// a valid tree but a different shape.
func splay[K cmp.Ordered, V any](root *node[K, V], key K) *node[K, V] {
	if root == nil {
		return nil
	}

	switch c := cmp.Compare(key, root.key); {
	case c == 0:
		return root

	case c < 0:
		if root.left == nil {
			return root
		}

		switch cmp.Compare(key, root.left.key) {
		case -1: // zig-zig
			root.left.left = splay(root.left.left, key)
			root = rotateRight(root)
		case 1: // zig-zag
			root.left.right = splay(root.left.right, key)
			if root.left.right != nil {
				root.left = rotateLeft(root.left)
			}
		}

		if root.left == nil {
			return root
		}
		return rotateRight(root)

	default:
		if root.right == nil {
			return root
		}

		switch cmp.Compare(key, root.right.key) {
		case 1: // zag-zag
			root.right.right = splay(root.right.right, key)
			root = rotateLeft(root)
		case -1: // zag-zig
			root.right.left = splay(root.right.left, key)
			if root.right.left != nil {
				root.right = rotateRight(root.right)
			}
		}

		if root.right == nil {
			return root
		}
		return rotateLeft(root)
	}
}
