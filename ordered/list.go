package ordered

import (
	"container/list"
	"fmt"

	"github.com/arloliu/huffman/errs"
)

// List is a sequence kept in ascending order by less, from the head (lowest)
// to the tail (highest).
//
// An item that is equal to one already stored is never inserted twice.
// Items that are neither less nor greater than each other but not equal keep
// insertion order: a new item goes after every item it is not less than.
type List[T any] struct {
	items *list.List
	less  func(a, b T) bool
	equal func(a, b T) bool
}

var _ Queue[int] = (*List[int])(nil)

// NewList creates an empty List ordered by less, using equal for duplicate
// detection, Search and Index.
func NewList[T any](less, equal func(a, b T) bool) *List[T] {
	return &List[T]{
		items: list.New(),
		less:  less,
		equal: equal,
	}
}

// Add inserts item at its sorted position and returns true. If an equal item
// is already present, Add returns false and leaves the list unchanged.
func (l *List[T]) Add(item T) bool {
	if l.Search(item) {
		return false
	}

	for e := l.items.Front(); e != nil; e = e.Next() {
		if l.less(item, e.Value.(T)) {
			l.items.InsertBefore(item, e)
			return true
		}
	}
	l.items.PushBack(item)

	return true
}

// Remove deletes the first item equal to item and reports whether one was found.
func (l *List[T]) Remove(item T) bool {
	if e := l.find(item); e != nil {
		l.items.Remove(e)
		return true
	}

	return false
}

// Pop removes and returns the item at index, counting from the head at 0.
// It fails with errs.ErrIndexOutOfRange if index is negative or not less
// than Size.
func (l *List[T]) Pop(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.items.Len() {
		return zero, fmt.Errorf("%w: pop index %d, size %d", errs.ErrIndexOutOfRange, index, l.items.Len())
	}

	e := l.items.Front()
	for range index {
		e = e.Next()
	}

	return l.items.Remove(e).(T), nil
}

// Search reports whether an item equal to item is present.
func (l *List[T]) Search(item T) bool {
	return l.find(item) != nil
}

// Index returns the position of the first item equal to item.
// It reports false if there is none.
func (l *List[T]) Index(item T) (int, bool) {
	i := 0
	for e := l.items.Front(); e != nil; e = e.Next() {
		if l.equal(e.Value.(T), item) {
			return i, true
		}
		i++
	}

	return -1, false
}

// Size returns the number of items.
func (l *List[T]) Size() int {
	return l.items.Len()
}

// IsEmpty reports whether the list holds no items.
func (l *List[T]) IsEmpty() bool {
	return l.items.Len() == 0
}

// Items returns the items from head to tail.
func (l *List[T]) Items() []T {
	out := make([]T, 0, l.items.Len())
	for e := l.items.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(T))
	}

	return out
}

// Reversed returns the items from tail to head.
func (l *List[T]) Reversed() []T {
	out := make([]T, 0, l.items.Len())
	for e := l.items.Back(); e != nil; e = e.Prev() {
		out = append(out, e.Value.(T))
	}

	return out
}

// Push implements Queue using Add.
func (l *List[T]) Push(item T) bool {
	return l.Add(item)
}

// PopMin implements Queue by popping the head.
func (l *List[T]) PopMin() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errs.ErrEmptyQueue
	}

	return l.Pop(0)
}

// Len implements Queue using Size.
func (l *List[T]) Len() int {
	return l.Size()
}

func (l *List[T]) find(item T) *list.Element {
	for e := l.items.Front(); e != nil; e = e.Next() {
		if l.equal(e.Value.(T), item) {
			return e
		}
	}

	return nil
}
