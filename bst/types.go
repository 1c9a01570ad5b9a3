// This file declares the Node type, the New constructor, and the
// sentinel errors shared by all bst operations.
package bst

import (
	"cmp"
	"errors"
)

// Sentinel errors for bst operations.
var (
	// ErrEmptyTree indicates that Min or Max was called on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")
)

// Node is a binary-search-tree vertex. A *Node (pointer to the root)
// represents a tree; a nil *Node is an empty tree.
//
// Left and Right are ownership references: a node is owned by exactly
// one parent slot (or by the caller's root variable), and no parent
// pointer is kept. The fields are exported so that structural
// algorithms in sibling packages (e.g. dsw) can rewire them in place.
type Node[K cmp.Ordered] struct {
	// Key is the node's ordering key. Everything to the left compares
	// less than Key; everything to the right compares greater or equal.
	Key K

	// Left and Right point to the child subtrees; nil means absent.
	Left, Right *Node[K]
}

// New allocates a leaf node holding key and returns a pointer to it.
func New[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key}
}
