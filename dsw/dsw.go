package dsw

import (
	"cmp"
	"math/bits"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvltree/bst"
)

// Balance — Day–Stout–Warren tree balancing
//
// Description:
//
//	Balance rebuilds an arbitrary BST into a route-balanced tree: a
//	complete binary tree of height ⌊log2(n)⌋+1 whose last level is
//	filled from the left. The in-order key sequence is preserved and
//	the transformation is destructive: every node's Left/Right pointers
//	may be rewired, and only the returned pointer is valid afterwards.
//
// Algorithm Outline:
//  1. Vine build (treeToVine): starting from a dummy anchor whose Right
//     holds the working root, walk the right spine with a tail/rest
//     cursor pair. Whenever rest has a left child, rotate right at rest
//     (the left child is promoted under tail and re-examined);
//     otherwise advance both cursors. Terminates with a right-leaning
//     vine and the exact node count.
//  2. Compression (vineToTree): compute leaves = n+1 − 2^⌊log2(n+1)⌋,
//     the excess beyond the largest perfect tree. One pass of `leaves`
//     left rotations tucks the excess nodes into the bottom level, then
//     passes of m/2, m/4, … rotations (m = n − leaves) fold the
//     remaining perfect-sized spine level by level.
//
// Complexity:
//
//	Time   = O(n): ≤ n−1 right rotations, n−⌊log2(n+1)⌋ left rotations.
//	Memory = O(1): one dummy anchor per phase, nothing else.
//
// Balance never fails for a valid finite tree: a nil root yields a nil
// result, and no error is returned. Cyclic or non-tree inputs are
// undefined behavior.
func Balance[K cmp.Ordered](root *bst.Node[K], opts ...Option) *bst.Node[K] {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Empty tree: nothing to do
	if root == nil {
		if o.Stats != nil {
			*o.Stats = Stats{}
		}

		return nil
	}

	// 3. Phase one: flatten into a right-leaning vine, counting nodes
	vine, size, rights := treeToVine(root)
	log.Debugf("dsw: vine built size=%d rightRotations=%d", size, rights)

	// 4. Phase two: fold the vine into a complete tree
	balanced, lefts, passes := vineToTree(vine, size)
	log.Debugf("dsw: compressed leftRotations=%d passes=%d height=%d",
		lefts, passes, bits.Len(uint(size)))

	// 5. Expose diagnostics
	if o.Stats != nil {
		*o.Stats = Stats{
			Size:           size,
			RightRotations: rights,
			LeftRotations:  lefts,
			Passes:         passes,
		}
	}

	return balanced
}

// treeToVine flattens the tree into a right-leaning vine by successive
// right rotations and counts its nodes:
//
//	    (d)        (b)      a       a
//	    / \        / \       \       \
//	   b   e  =>  a   d  =>   b   =>  b
//	  / \            / \       \       \
//	 a   c          c   e      (d)      c
//	                           / \       \
//	                          c   e       ...
//
// tail is the last node confirmed to have no left child; rest is the
// node under consideration. Both start at the dummy anchor, so the root
// needs no special casing. Every node already behind tail is in final
// vine position, which bounds the total rotations by the number of
// left-child edges in the input.
func treeToVine[K cmp.Ordered](root *bst.Node[K]) (vine *bst.Node[K], size, rotations int) {
	dummy := &bst.Node[K]{Right: root} // anchor; Key is never read
	tail := dummy
	rest := tail.Right
	for rest != nil {
		if rest.Left == nil {
			// Vine grew by one: advance both cursors.
			tail = rest
			rest = rest.Right
			size++
		} else {
			// Rotate right: promote rest.Left above rest, keep the
			// pair anchored under tail, re-examine the promoted node.
			pivot := rest.Left
			rest.Left = pivot.Right
			pivot.Right = rest
			tail.Right = pivot
			rest = pivot
			rotations++
		}
	}

	return dummy.Right, size, rotations
}

// vineToTree folds a vine of size nodes into a complete binary tree by
// rounds of left rotations. The first (possibly empty) pass places the
// excess nodes beyond the largest contained perfect tree as bottom-level
// leaves; each following pass halves the spine.
func vineToTree[K cmp.Ordered](vine *bst.Node[K], size int) (root *bst.Node[K], rotations, passes int) {
	dummy := &bst.Node[K]{Right: vine}

	// Excess nodes beyond the largest perfect tree of ≤ size nodes.
	leaves := size + 1 - perfectSize(size)
	if leaves > 0 {
		compress(dummy, leaves)
		rotations += leaves
		passes++
		log.Tracef("dsw: leaf pass rotations=%d", leaves)
	}

	// The remaining spine holds a perfect-tree count; halve per pass.
	for remaining := size - leaves; remaining > 1; remaining /= 2 {
		compress(dummy, remaining/2)
		rotations += remaining / 2
		passes++
		log.Tracef("dsw: compress pass rotations=%d", remaining/2)
	}

	return dummy.Right, rotations, passes
}

// compress performs count left rotations along the right spine under
// dummy, pivoting on the 1st, 3rd, 5th, … spine nodes:
//
//	 * <-scanner       *
//	  \                 \
//	   b <-child         d <-scanner
//	  / \               / \
//	 a   d       =>    b   e
//	    / \           / \
//	   c   e         a   c
//
// Each rotation removes child from the spine and hangs it as the left
// child of its former right child. The spine is always long enough for
// the rotation counts produced by vineToTree; a short spine means the
// count arithmetic is broken, and that is an invariant violation, not a
// recoverable condition.
func compress[K cmp.Ordered](dummy *bst.Node[K], count int) {
	scanner := dummy
	for i := 0; i < count; i++ {
		child := scanner.Right
		if child == nil || child.Right == nil {
			panic("dsw: compress: vine spine shorter than rotation count")
		}

		// Rotate left: promote child.Right into the spine, demote
		// child into its left slot.
		pivot := child.Right
		child.Right = pivot.Left
		pivot.Left = child
		scanner.Right = pivot
		scanner = pivot
	}
}

// perfectSize returns 2^⌊log2(n+1)⌋ for n ≥ 0: one more than the size
// of the largest perfect binary tree with at most n nodes. Computed via
// integer bit length, so it is exact for every n, including values at
// and around powers of two.
func perfectSize(n int) int {
	return 1 << (bits.Len(uint(n+1)) - 1)
}
