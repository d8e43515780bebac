package ordered

import (
	"container/heap"

	"github.com/arloliu/huffman/errs"
)

// Heap is a binary min-heap ordered by less.
//
// Unlike List, Heap does not look for duplicates: Push always accepts the
// item. For the strict total order used by the tree builder no two queued
// nodes compare equal, so both queues behave identically there.
type Heap[T any] struct {
	h itemHeap[T]
}

var _ Queue[int] = (*Heap[int])(nil)

// NewHeap creates an empty Heap ordered by less. capacity preallocates room
// for that many items.
func NewHeap[T any](less func(a, b T) bool, capacity int) *Heap[T] {
	return &Heap[T]{
		h: itemHeap[T]{
			items: make([]T, 0, capacity),
			less:  less,
		},
	}
}

// Push inserts item and always returns true.
func (q *Heap[T]) Push(item T) bool {
	heap.Push(&q.h, item)
	return true
}

// PopMin removes and returns the lowest item, or errs.ErrEmptyQueue.
func (q *Heap[T]) PopMin() (T, error) {
	if len(q.h.items) == 0 {
		var zero T
		return zero, errs.ErrEmptyQueue
	}

	return heap.Pop(&q.h).(T), nil
}

// Len returns the number of items.
func (q *Heap[T]) Len() int {
	return len(q.h.items)
}

type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

var _ heap.Interface = (*itemHeap[int])(nil)

func (h *itemHeap[T]) Len() int           { return len(h.items) }
func (h *itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *itemHeap[T]) Pop() any {
	last := len(h.items) - 1
	x := h.items[last]

	var zero T
	h.items[last] = zero
	h.items = h.items[:last]

	return x
}
