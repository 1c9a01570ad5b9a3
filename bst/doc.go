// Package bst implements a plain generic binary search tree: the Node
// type shared by the whole module plus the classic operations — insert,
// search, delete, min/max, traversal, height and counting.
//
// 🚀 What is bst?
//
//	The foundation the rest of lvltree builds on. A tree is simply a
//	*Node[K]; a nil *Node[K] is an empty tree. All operations are plain
//	functions taking the root and returning the (possibly new) root, so
//	the zero value is immediately useful:
//
//	  var root *bst.Node[int]
//	  root = bst.Insert(root, 42)
//
// ✨ Key properties:
//   - Generic over any ordered key type (cmp.Ordered)
//   - No self-balancing: shape is dictated by insertion order; pair with
//     package dsw when a degenerate tree must become searchable again
//   - Duplicates allowed via Insert (equal keys descend right), or
//     rejected via InsertUnique
//
// Complexity:
//
//   - Insert / Search / Remove / Min / Max: O(h), h = tree height
//   - Height / Count / InOrder / Keys:      O(n)
//
// Errors:
//
//   - ErrEmptyTree — Min or Max called on an empty tree.
package bst
