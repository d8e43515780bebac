// Package freq counts byte frequencies.
package freq

import (
	"bufio"
	"io"
	"math/bits"
)

// Size is the number of symbols in the alphabet.
const Size = 256

// Table maps every byte symbol to its number of occurrences.
type Table [Size]uint64

// Count returns the frequency table of data.
func Count(data []byte) Table {
	var t Table
	t.Add(data)

	return t
}

// CountReader reads r to the end and returns its frequency table.
// Read errors are returned as-is.
func CountReader(r io.Reader) (Table, error) {
	var t Table

	br := bufio.NewReader(r)
	buf := make([]byte, 32*1024)
	for {
		n, err := br.Read(buf)
		t.Add(buf[:n])
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return Table{}, err
		}
	}
}

// Add counts every byte of data into t.
func (t *Table) Add(data []byte) {
	for _, b := range data {
		t[b]++
	}
}

// Total returns the sum of all frequencies.
func (t *Table) Total() uint64 {
	var total uint64
	for _, f := range t {
		total += f
	}

	return total
}

// CheckedTotal returns the sum of all frequencies and reports false if the
// sum does not fit in a uint64. Tables counted from real data always fit;
// tables parsed from a header may not.
func (t *Table) CheckedTotal() (uint64, bool) {
	var total, carry uint64
	for _, f := range t {
		total, carry = bits.Add64(total, f, 0)
		if carry != 0 {
			return 0, false
		}
	}

	return total, true
}

// Unique returns the number of symbols with a nonzero frequency.
func (t *Table) Unique() int {
	n := 0
	for _, f := range t {
		if f != 0 {
			n++
		}
	}

	return n
}

// Single reports whether exactly one symbol has a nonzero frequency, and if
// so returns it with its count.
func (t *Table) Single() (sym byte, count uint64, ok bool) {
	found := false
	for s, f := range t {
		if f == 0 {
			continue
		}
		if found {
			return 0, 0, false
		}
		found = true
		sym, count = byte(s), f //nolint:gosec
	}

	return sym, count, found
}

// IsEmpty reports whether every frequency is zero.
func (t *Table) IsEmpty() bool {
	for _, f := range t {
		if f != 0 {
			return false
		}
	}

	return true
}
