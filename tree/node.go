// Package tree builds Huffman trees from frequency tables and derives their
// code tables.
//
// Construction is deterministic: nodes are ordered by frequency and then by
// representative symbol, the smallest symbol found in the subtree. Two builds
// from the same table always produce structurally identical trees, which is
// what allows a decoder to rebuild the encoder's tree from the frequency
// header alone.
package tree

import "fmt"

// Node is a Huffman tree node.
//
// A leaf has no children and Symbol is the byte it stands for. An internal
// node always has both children, Freq is the sum of their frequencies and
// Symbol is the smaller of their representative symbols.
type Node struct {
	Symbol byte
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Child returns the left child for bit 0 and the right child otherwise.
func (n *Node) Child(bit uint8) *Node {
	if bit == 0 {
		return n.Left
	}
	return n.Right
}

// String returns a short description of n.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("leaf(%d:%d)", n.Symbol, n.Freq)
	}
	return fmt.Sprintf("node(%d:%d)", n.Symbol, n.Freq)
}

// Leaves returns the number of leaves under n.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}

	count := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsLeaf() {
			count++
			continue
		}
		stack = append(stack, cur.Left, cur.Right)
	}

	return count
}

// Depth returns the length of the longest root-to-leaf path under n.
// A single leaf has depth 0.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Less is the total order used by the priority queues: frequency ascending,
// then representative symbol ascending.
func Less(a, b *Node) bool {
	if a.Freq != b.Freq {
		return a.Freq < b.Freq
	}
	return a.Symbol < b.Symbol
}

// Equal reports whether a and b have the same frequency, symbol and shape,
// comparing every node of both trees. Two nil trees are equal.
func Equal(a, b *Node) bool {
	type pair struct{ a, b *Node }

	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}

		if p.a.Freq != p.b.Freq || p.a.Symbol != p.b.Symbol {
			return false
		}
		stack = append(stack, pair{p.a.Left, p.b.Left}, pair{p.a.Right, p.b.Right})
	}

	return true
}

// merge joins a and b, the two lowest queued nodes, under a new internal node.
func merge(a, b *Node) *Node {
	return &Node{
		Symbol: min(a.Symbol, b.Symbol),
		Freq:   a.Freq + b.Freq,
		Left:   a,
		Right:  b,
	}
}
