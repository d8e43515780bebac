package ordered

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arloliu/huffman/errs"
)

// weighted mirrors the (frequency, symbol) ordering used by tree nodes.
type weighted struct {
	sym  int
	freq int
}

func weightedLess(a, b weighted) bool {
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.sym < b.sym
}

func weightedEqual(a, b weighted) bool { return a == b }

func intLess(a, b int) bool  { return a < b }
func intEqual(a, b int) bool { return a == b }

func TestList_AddKeepsOrder(t *testing.T) {
	l := NewList(intLess, intEqual)
	require.True(t, l.IsEmpty())

	for _, v := range []int{5, 1, 4, 2, 3} {
		require.True(t, l.Add(v))
	}

	require.Equal(t, []int{1, 2, 3, 4, 5}, l.Items())
	require.Equal(t, []int{5, 4, 3, 2, 1}, l.Reversed())
	require.Equal(t, 5, l.Size())
	require.False(t, l.IsEmpty())
}

func TestList_AddRejectsDuplicate(t *testing.T) {
	l := NewList(intLess, intEqual)
	require.True(t, l.Add(7))
	require.True(t, l.Add(3))

	require.False(t, l.Add(7))
	require.Equal(t, 2, l.Size())
	require.Equal(t, []int{3, 7}, l.Items())
}

func TestList_FrequencySymbolOrder(t *testing.T) {
	// Frequencies 2 4 8 16 0 2 0 for symbols 97..103.
	l := NewList(weightedLess, weightedEqual)
	freqs := []int{2, 4, 8, 16, 0, 2, 0}
	for i, f := range freqs {
		require.True(t, l.Add(weighted{sym: 97 + i, freq: f}))
	}

	idx, ok := l.Index(weighted{sym: 101, freq: 0})
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = l.Index(weighted{sym: 100, freq: 16})
	require.True(t, ok)
	require.Equal(t, 6, idx)

	idx, ok = l.Index(weighted{sym: 97, freq: 2})
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = l.Index(weighted{sym: 97, freq: 3})
	require.False(t, ok)
}

func TestList_Pop(t *testing.T) {
	l := NewList(intLess, intEqual)
	for _, v := range []int{10, 20, 30, 40} {
		l.Add(v)
	}

	v, err := l.Pop(2)
	require.NoError(t, err)
	require.Equal(t, 30, v)

	v, err = l.Pop(0)
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.Equal(t, []int{20, 40}, l.Items())

	t.Run("index equal to size", func(t *testing.T) {
		_, err := l.Pop(l.Size())
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
		require.Equal(t, 2, l.Size())
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := l.Pop(-1)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	})

	t.Run("empty list", func(t *testing.T) {
		empty := NewList(intLess, intEqual)
		_, err := empty.Pop(0)
		require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
	})
}

func TestList_SearchAndRemove(t *testing.T) {
	l := NewList(intLess, intEqual)
	for _, v := range []int{3, 1, 2} {
		l.Add(v)
	}

	require.True(t, l.Search(2))
	require.False(t, l.Search(9))

	require.True(t, l.Remove(2))
	require.False(t, l.Remove(2))
	require.False(t, l.Search(2))
	require.Equal(t, []int{1, 3}, l.Items())

	require.True(t, l.Remove(1))
	require.True(t, l.Remove(3))
	require.True(t, l.IsEmpty())
	require.Empty(t, l.Items())
	require.Empty(t, l.Reversed())
}

func TestList_QueueInterface(t *testing.T) {
	var q Queue[int] = NewList(intLess, intEqual)
	q.Push(2)
	q.Push(1)
	require.Equal(t, 2, q.Len())

	v, err := q.PopMin()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = q.PopMin()
	require.NoError(t, err)

	_, err = q.PopMin()
	require.ErrorIs(t, err, errs.ErrEmptyQueue)
}

func TestList_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := NewList(intLess, intEqual)
		model := make(map[int]struct{})

		ops := rapid.SliceOf(rapid.IntRange(-50, 50)).Draw(t, "ops")
		for _, op := range ops {
			if op >= 0 || l.IsEmpty() {
				_, dup := model[op]
				added := l.Add(op)
				require.Equal(t, !dup, added, "Add(%d)", op)
				model[op] = struct{}{}
			} else {
				idx := (-op) % l.Size()
				v, err := l.Pop(idx)
				require.NoError(t, err)
				delete(model, v)
			}

			items := l.Items()
			require.True(t, slices.IsSorted(items), "items out of order: %v", items)
			require.Len(t, items, len(model))
			require.Equal(t, len(model), l.Size())
		}
	})
}
