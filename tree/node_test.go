package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leaf(sym byte, f uint64) *Node {
	return &Node{Symbol: sym, Freq: f}
}

func TestLess(t *testing.T) {
	require.True(t, Less(leaf('b', 1), leaf('a', 2)))
	require.False(t, Less(leaf('a', 2), leaf('b', 1)))
	require.True(t, Less(leaf('a', 3), leaf('b', 3)))
	require.False(t, Less(leaf('b', 3), leaf('a', 3)))
	require.False(t, Less(leaf('a', 3), leaf('a', 3)))
}

func TestEqual(t *testing.T) {
	a := merge(leaf('a', 1), leaf('b', 2))
	b := merge(leaf('a', 1), leaf('b', 2))
	require.True(t, Equal(a, b))
	require.True(t, Equal(nil, nil))
	require.False(t, Equal(a, nil))
	require.False(t, Equal(nil, a))

	swapped := &Node{Symbol: 'a', Freq: 3, Left: leaf('b', 2), Right: leaf('a', 1)}
	require.False(t, Equal(a, swapped), "same root fields, different children")

	require.False(t, Equal(leaf('a', 3), a), "leaf against internal node")
}

func TestEqual_DeepTreeDoesNotRecurse(t *testing.T) {
	build := func() *Node {
		n := leaf(0, 1)
		for i := range 100_000 {
			n = &Node{Symbol: 0, Freq: uint64(i) + 2, Left: n, Right: leaf(1, 1)}
		}
		return n
	}
	require.True(t, Equal(build(), build()))
}

func TestMerge(t *testing.T) {
	a, b := leaf('z', 2), leaf('c', 5)
	n := merge(a, b)

	require.Equal(t, uint64(7), n.Freq)
	require.Equal(t, byte('c'), n.Symbol)
	require.Same(t, a, n.Left)
	require.Same(t, b, n.Right)
	require.False(t, n.IsLeaf())
}

func TestNode_Shape(t *testing.T) {
	var nilNode *Node
	require.Equal(t, 0, nilNode.Leaves())
	require.Equal(t, 0, nilNode.Depth())
	require.Equal(t, "<nil>", nilNode.String())

	n := merge(merge(leaf('a', 1), leaf('b', 1)), leaf('c', 3))
	require.Equal(t, 3, n.Leaves())
	require.Equal(t, 2, n.Depth())
	require.Equal(t, "node(97:5)", n.String())
	require.Equal(t, "leaf(99:3)", n.Right.String())
	require.Same(t, n.Left, n.Child(0))
	require.Same(t, n.Right, n.Child(1))
}
