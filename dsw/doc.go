// Package dsw rebalances binary search trees with the Day–Stout–Warren
// algorithm: any BST becomes a complete-shape tree in O(n) time and O(1)
// extra space, using nothing but in-place rotations.
//
// 🚀 What is DSW?
//
//	A two-phase whole-tree transformation:
//	  1. Vine build — repeated right rotations flatten the tree into a
//	     right-leaning "vine" (a sorted linked list over Right pointers,
//	     no node keeps a Left child).
//	  2. Compression — rounds of left rotations along the right spine
//	     fold the vine into a complete binary tree: first a partial pass
//	     positions the bottom-level leaves, then each full pass halves
//	     the spine length.
//
// ✨ Key properties:
//   - In-place: rotations only rewire child pointers; the single dummy
//     anchor is the only allocation
//   - Exact: the perfect-tree size 2^⌊log2(n+1)⌋ comes from integer
//     bit-length arithmetic, never floating-point log
//   - Deterministic: same input tree, same output shape, every time
//   - Observable: install a Stats sink via WithStats to count rotations
//     and passes
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvltree/bst"
//	  "github.com/katalvlaran/lvltree/dsw"
//	)
//
//	var root *bst.Node[int]
//	for _, k := range keys {
//	  root = bst.Insert(root, k)
//	}
//	root = dsw.Balance(root) // height is now ⌊log2(n)⌋+1
//
// Performance:
//
//   - Time:   O(n) — at most n−1 right rotations plus n−⌊log2(n)⌋ left
//     rotations (a geometric series of pass lengths)
//   - Memory: O(1) beyond the input tree
//
// Balance takes ownership of root: the tree is rewired destructively and
// the caller must use the returned pointer. See example_test.go for
// runnable walkthroughs.
package dsw
