// Package lvltree is an in-memory toolkit for binary search trees — from
// the core generic Node type to linear-time whole-tree rebalancing.
//
// 🚀 What is lvltree?
//
//	A small, focused library that brings together:
//		• Core primitives: a generic BST node with insert, search, delete,
//		  min/max, traversal and counting helpers
//		• Rebalancing: the Day–Stout–Warren algorithm, turning any BST
//		  into a complete-shape tree in O(n) time and O(1) extra space
//
// ✨ Why choose lvltree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Exact arithmetic – integer bit-length math, no floating-point log2
//   - In-place – rotations only rewire child pointers, zero per-node
//     allocations
//   - Observable – optional rotation/pass diagnostics via dsw.WithStats
//
// Everything is organized under two subpackages:
//
//	bst/ — the generic Node[K] type and classic BST operations
//	dsw/ — Day–Stout–Warren rebalancing (vine build + compression)
//
// Quick ASCII example:
//
//	1                    4
//	 \                  / \
//	  2                2   6
//	   \      =>      / \ / \
//	    ...          1  3 5  7
//	      7
//
//	a degenerate chain of 7 keys becomes a perfect tree of height 3.
//
// Dive into the package docs and example_test.go files for runnable
// walkthroughs.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
