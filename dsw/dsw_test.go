package dsw_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/bst"
	"github.com/katalvlaran/lvltree/dsw"
)

// ascChain builds a degenerate right-only chain 1..n (sorted insertion).
func ascChain(n int) *bst.Node[int] {
	var root *bst.Node[int]
	for k := 1; k <= n; k++ {
		root = bst.Insert(root, k)
	}

	return root
}

// descChain builds a degenerate left-only chain n..1 (reverse-sorted insertion).
func descChain(n int) *bst.Node[int] {
	var root *bst.Node[int]
	for k := n; k >= 1; k-- {
		root = bst.Insert(root, k)
	}

	return root
}

// randomTree inserts a deterministic permutation of 1..n.
func randomTree(n int, seed int64) *bst.Node[int] {
	rng := rand.New(rand.NewSource(seed))
	var root *bst.Node[int]
	for _, k := range rng.Perm(n) {
		root = bst.Insert(root, k+1)
	}

	return root
}

// completeHeight is the height of a complete binary tree of n nodes:
// floor(log2(n)) + 1, and 0 for the empty tree.
func completeHeight(n int) int {
	return bits.Len(uint(n))
}

// sorted returns the expected in-order sequence 1..n.
func sorted(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i + 1
	}

	return keys
}

// TestBalance_EmptyTree verifies that a nil root balances to nil and
// that an installed Stats sink is zeroed.
func TestBalance_EmptyTree(t *testing.T) {
	st := dsw.Stats{Size: -1, RightRotations: -1, LeftRotations: -1, Passes: -1}

	root := dsw.Balance[int](nil, dsw.WithStats(&st))
	assert.Nil(t, root, "empty tree must balance to empty tree")
	assert.Equal(t, dsw.Stats{}, st, "stats must be zeroed for an empty tree")
}

// TestBalance_SingleNode verifies that a one-node tree is returned as is,
// with no rotations performed.
func TestBalance_SingleNode(t *testing.T) {
	var st dsw.Stats

	root := dsw.Balance(bst.New(42), dsw.WithStats(&st))
	require.NotNil(t, root)
	assert.Equal(t, 42, root.Key)
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)
	assert.Equal(t, dsw.Stats{Size: 1}, st, "single node needs zero rotations")
}

// TestBalance_TwoNodes verifies the height-2 result for both insertion
// orders; the complete shape keeps key 2 at the root with 1 on its left.
func TestBalance_TwoNodes(t *testing.T) {
	for name, root := range map[string]*bst.Node[int]{
		"ascending":  ascChain(2),
		"descending": descChain(2),
	} {
		balanced := dsw.Balance(root)
		require.NotNil(t, balanced, name)
		assert.Equal(t, 2, balanced.Key, "%s: root key", name)
		require.NotNil(t, balanced.Left, "%s: left child", name)
		assert.Equal(t, 1, balanced.Left.Key, "%s: left key", name)
		assert.Nil(t, balanced.Right, "%s: right child must be absent", name)
		assert.Equal(t, 2, bst.Height(balanced), "%s: height", name)
	}
}

// TestBalance_ThreeNodes verifies that both degenerate chains of 1,2,3
// become the perfect tree 2(1,3) of height 2.
func TestBalance_ThreeNodes(t *testing.T) {
	for name, root := range map[string]*bst.Node[int]{
		"ascending":  ascChain(3),
		"descending": descChain(3),
	} {
		balanced := dsw.Balance(root)
		require.NotNil(t, balanced, name)
		assert.Equal(t, 2, balanced.Key, "%s: root key", name)
		require.NotNil(t, balanced.Left, name)
		require.NotNil(t, balanced.Right, name)
		assert.Equal(t, 1, balanced.Left.Key, "%s: left leaf", name)
		assert.Equal(t, 3, balanced.Right.Key, "%s: right leaf", name)
		assert.Equal(t, 2, bst.Height(balanced), "%s: height", name)
	}
}

// TestBalance_SevenKeyChain checks the exact shape for the classic
// [1..7] chain: root 4, subtrees 2(1,3) and 6(5,7), height 3.
func TestBalance_SevenKeyChain(t *testing.T) {
	root := dsw.Balance(ascChain(7))

	require.NotNil(t, root)
	assert.Equal(t, 4, root.Key, "root of the perfect 7-node tree")

	left, right := root.Left, root.Right
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Equal(t, 2, left.Key)
	assert.Equal(t, 6, right.Key)

	require.NotNil(t, left.Left)
	require.NotNil(t, left.Right)
	require.NotNil(t, right.Left)
	require.NotNil(t, right.Right)
	assert.Equal(t, 1, left.Left.Key)
	assert.Equal(t, 3, left.Right.Key)
	assert.Equal(t, 5, right.Left.Key)
	assert.Equal(t, 7, right.Right.Key)

	assert.Equal(t, 3, bst.Height(root), "height of the perfect 7-node tree")
}

// TestBalance_InOrderPreserved verifies that balancing never changes the
// in-order key sequence, over several sizes and random shapes.
func TestBalance_InOrderPreserved(t *testing.T) {
	for _, n := range []int{1, 2, 10, 33, 100, 257} {
		root := dsw.Balance(randomTree(n, int64(n)))
		assert.Equal(t, sorted(n), bst.Keys(root), "n=%d: in-order sequence must be preserved", n)
	}
}

// TestBalance_CompleteHeight verifies the complete-tree height
// floor(log2(n))+1 for all n in 0..300 across sorted, reverse-sorted
// and random inputs.
func TestBalance_CompleteHeight(t *testing.T) {
	shapes := map[string]func(int) *bst.Node[int]{
		"sorted":  ascChain,
		"reverse": descChain,
		"random":  func(n int) *bst.Node[int] { return randomTree(n, 7) },
	}
	for name, build := range shapes {
		for n := 0; n <= 300; n++ {
			root := dsw.Balance(build(n))
			assert.Equal(t, completeHeight(n), bst.Height(root),
				"%s input, n=%d: height must be floor(log2(n))+1", name, n)
		}
	}
}

// TestBalance_SizePreserved verifies that no nodes are lost or invented.
func TestBalance_SizePreserved(t *testing.T) {
	for _, n := range []int{0, 1, 5, 64, 200} {
		root := dsw.Balance(randomTree(n, 13))
		assert.Equal(t, n, bst.Count(root), "n=%d: node count must be preserved", n)
	}
}

// TestBalance_Idempotent verifies that re-balancing an already balanced
// tree is a structural fixed point: same height, same sequence.
func TestBalance_Idempotent(t *testing.T) {
	once := dsw.Balance(randomTree(100, 99))
	h, keys := bst.Height(once), bst.Keys(once)

	twice := dsw.Balance(once)
	assert.Equal(t, h, bst.Height(twice), "height must not change on re-balance")
	assert.Equal(t, keys, bst.Keys(twice), "sequence must not change on re-balance")
}

// TestBalance_Stats verifies the exact rotation accounting for known
// inputs: an ascending chain has no left edges (zero right rotations),
// a descending chain has n-1 of them, and for n=7 compression performs
// 3+1 left rotations in two passes.
func TestBalance_Stats(t *testing.T) {
	var st dsw.Stats

	dsw.Balance(ascChain(7), dsw.WithStats(&st))
	assert.Equal(t, dsw.Stats{Size: 7, RightRotations: 0, LeftRotations: 4, Passes: 2}, st)

	dsw.Balance(descChain(7), dsw.WithStats(&st))
	assert.Equal(t, dsw.Stats{Size: 7, RightRotations: 6, LeftRotations: 4, Passes: 2}, st)

	// n=10: leaf pass of 3 rotations, then full passes of 3 and 1.
	dsw.Balance(ascChain(10), dsw.WithStats(&st))
	assert.Equal(t, dsw.Stats{Size: 10, RightRotations: 0, LeftRotations: 7, Passes: 3}, st)
}

// TestBalance_DuplicateKeys verifies that trees holding duplicate keys
// balance like any other: sequence and count preserved, complete height.
func TestBalance_DuplicateKeys(t *testing.T) {
	var root *bst.Node[int]
	for _, k := range []int{5, 3, 5, 1, 3, 5, 2} {
		root = bst.Insert(root, k)
	}

	balanced := dsw.Balance(root)
	assert.Equal(t, []int{1, 2, 3, 3, 5, 5, 5}, bst.Keys(balanced))
	assert.Equal(t, 3, bst.Height(balanced))
}

// TestBalance_StringKeys verifies the algorithm is key-type agnostic.
func TestBalance_StringKeys(t *testing.T) {
	var root *bst.Node[string]
	for _, k := range []string{"fig", "apple", "grape", "banana", "elder", "cherry", "date"} {
		root = bst.Insert(root, k)
	}

	balanced := dsw.Balance(root)
	assert.Equal(t,
		[]string{"apple", "banana", "cherry", "date", "elder", "fig", "grape"},
		bst.Keys(balanced))
	assert.Equal(t, 3, bst.Height(balanced))
}
