// This file implements the classic BST operations: insertion, lookup,
// deletion, extrema, traversal, height and counting. All mutating
// operations return the (possibly new) root; callers must keep using
// the returned pointer.
package bst

import "cmp"

// Insert adds key to the tree rooted at root and returns the new root.
// Duplicate keys are allowed; an equal key descends to the right, so
// repeated insertions of the same key keep the in-order sequence
// non-decreasing. Complexity: O(h).
func Insert[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	node := New(key)

	// Special case, empty tree
	if root == nil {
		return node
	}

	cur := root
	for {
		if key < cur.Key {
			if cur.Left == nil {
				cur.Left = node

				return root
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = node

				return root
			}
			cur = cur.Right
		}
	}
}

// InsertUnique adds key to the tree only if no node with an equal key
// exists. Returns the new root and true on success, or the unchanged
// root and false if key was already present. Complexity: O(h).
func InsertUnique[K cmp.Ordered](root *Node[K], key K) (*Node[K], bool) {
	node := New(key)
	if root == nil {
		return node, true
	}

	cur := root
	for {
		switch {
		case key < cur.Key:
			if cur.Left == nil {
				cur.Left = node

				return root, true
			}
			cur = cur.Left
		case key > cur.Key:
			if cur.Right == nil {
				cur.Right = node

				return root, true
			}
			cur = cur.Right
		default:
			return root, false
		}
	}
}

// Search locates the first node whose key equals key. Returns the node
// and true if found, or nil and false otherwise. Complexity: O(h).
func Search[K cmp.Ordered](root *Node[K], key K) (*Node[K], bool) {
	node, _ := findNode(root, key)
	if node == nil {
		return nil, false
	}

	return node, true
}

// Min returns the smallest key in the tree, or ErrEmptyTree if the tree
// is empty. Complexity: O(h).
func Min[K cmp.Ordered](root *Node[K]) (K, error) {
	if root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	for root.Left != nil {
		root = root.Left
	}

	return root.Key, nil
}

// Max returns the largest key in the tree, or ErrEmptyTree if the tree
// is empty. Complexity: O(h).
func Max[K cmp.Ordered](root *Node[K]) (K, error) {
	if root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	for root.Right != nil {
		root = root.Right
	}

	return root.Key, nil
}

// Remove locates and deletes the first node whose key equals key.
// Returns the new root and true if a node was removed, or the unchanged
// root and false if no node matched. Complexity: O(h).
func Remove[K cmp.Ordered](root *Node[K], key K) (*Node[K], bool) {
	node, parent := findNode(root, key)
	if node == nil {
		return root, false
	}

	return removeNode(root, node, parent), true
}

// findNode locates the first node with the given key. Returns the node
// (nil if absent) and its parent (nil if the node is the root).
func findNode[K cmp.Ordered](root *Node[K], key K) (node, parent *Node[K]) {
	node = root
	for node != nil && node.Key != key {
		parent = node
		if key < node.Key {
			node = node.Left
		} else {
			node = node.Right
		}
	}

	return node, parent
}

// removeNode unlinks node from the tree. parent must be node's parent,
// or nil when node is the root. Returns the new root; the root changes
// only when the root node itself is removed.
func removeNode[K cmp.Ordered](root, node, parent *Node[K]) *Node[K] {
	switch {
	case node.Left == nil:
		// No left subtree: splice in the right subtree.
		root = replaceChild(root, parent, node, node.Right)
	case node.Right == nil:
		// No right subtree: splice in the left subtree.
		root = replaceChild(root, parent, node, node.Left)
	default:
		// Two children: copy the in-order successor's key into node,
		// then delete the successor (which has at most one child).
		succParent, succ := node, node.Right
		for succ.Left != nil {
			succParent = succ
			succ = succ.Left
		}
		node.Key = succ.Key
		root = removeNode(root, succ, succParent)
	}

	return root
}

// replaceChild rewires parent's slot that owned node to own repl
// instead. A nil parent means node was the root, so repl becomes the
// new root.
func replaceChild[K cmp.Ordered](root, parent, node, repl *Node[K]) *Node[K] {
	if parent == nil {
		return repl
	}
	if parent.Left == node {
		parent.Left = repl
	} else {
		parent.Right = repl
	}

	return root
}

// Height returns the height of the tree in nodes: 0 for an empty tree,
// 1 for a single node. Complexity: O(n).
func Height[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}
	lh := Height(root.Left)
	rh := Height(root.Right)
	if lh < rh {
		return rh + 1
	}

	return lh + 1
}

// Count returns the number of nodes in the tree. Complexity: O(n).
func Count[K cmp.Ordered](root *Node[K]) int {
	if root == nil {
		return 0
	}

	return Count(root.Left) + 1 + Count(root.Right)
}

// InOrder walks the tree in ascending key order, calling visit for each
// key. Returning false from visit stops the walk early.
func InOrder[K cmp.Ordered](root *Node[K], visit func(K) bool) {
	inOrder(root, visit)
}

// inOrder is the recursive worker for InOrder; it reports whether the
// walk should continue.
func inOrder[K cmp.Ordered](n *Node[K], visit func(K) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.Left, visit) {
		return false
	}
	if !visit(n.Key) {
		return false
	}

	return inOrder(n.Right, visit)
}

// Keys returns all keys of the tree in ascending order. Complexity:
// O(n) time and memory.
func Keys[K cmp.Ordered](root *Node[K]) []K {
	keys := make([]K, 0, Count(root))
	InOrder(root, func(k K) bool {
		keys = append(keys, k)

		return true
	})

	return keys
}
