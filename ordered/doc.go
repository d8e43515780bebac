// Package ordered provides the frequency-ordered priority structures used to
// build Huffman trees.
//
// Two implementations share the Queue interface:
//
//   - List is a sorted, duplicate-rejecting doubly linked sequence with
//     positional Pop, Search and Index. Inserts scan from the low end, so Add
//     is O(n) on average.
//   - Heap is a binary min-heap over the same order with O(log n) Push and
//     PopMin.
//
// Both order elements with a caller supplied less function. Given the same
// strict total order and the same sequence of operations, they pop elements
// in the same order, which is what makes tree construction reproducible
// regardless of the queue in use.
//
// Neither type is safe for concurrent use.
package ordered

// Queue is the minimal priority queue contract needed by the tree builder.
type Queue[T any] interface {
	// Push inserts item. It reports false if the item was rejected.
	Push(item T) bool
	// PopMin removes and returns the lowest ordered item.
	PopMin() (T, error)
	// Len returns the number of queued items.
	Len() int
}
