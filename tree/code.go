package tree

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/huffman/freq"
)

// Code is the path from the root to a leaf as a string of '0' (left) and
// '1' (right) characters.
type Code string

// Len returns the number of bits in c.
func (c Code) Len() int {
	return len(c)
}

// Bit returns bit i of c as 0 or 1.
func (c Code) Bit(i int) uint8 {
	return c[i] - '0'
}

// Table maps every symbol to its code. Symbols missing from the tree, and
// the lone symbol of a single-leaf tree, have an empty code.
type Table [freq.Size]Code

// GenerateCodes walks root depth first and records the code of every leaf.
// A nil root yields an all-empty table.
func GenerateCodes(root *Node) Table {
	var table Table
	if root == nil {
		return table
	}

	var visit func(*Node, []byte)
	visit = func(n *Node, prefix []byte) {
		if n.IsLeaf() {
			table[n.Symbol] = Code(prefix)
			return
		}

		// Appending may share the backing array between siblings; the left
		// subtree is finished before the right one overwrites it.
		visit(n.Left, append(prefix, '0'))
		visit(n.Right, append(prefix, '1'))
	}
	visit(root, make([]byte, 0, 16))

	return table
}

// Lookup returns the code of sym.
func (t *Table) Lookup(sym byte) Code {
	return t[sym]
}

// Len returns the number of symbols with a nonempty code.
func (t *Table) Len() int {
	n := 0
	for _, c := range t {
		if c != "" {
			n++
		}
	}

	return n
}

// EncodedBits returns the number of data bits needed to encode a source with
// frequencies f using t.
func (t *Table) EncodedBits(f freq.Table) uint64 {
	var total uint64
	for s, c := range t {
		total += f[s] * uint64(len(c))
	}

	return total
}

// Dump writes a programmer-readable listing of the nonempty codes to w.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	for s, c := range t {
		if c == "" {
			continue
		}
		fmt.Fprintf(&buf, "\t%s = %q\n", symbolLabel(byte(s)), string(c)) //nolint:gosec
	}
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}

func symbolLabel(s byte) string {
	if strconv.IsPrint(rune(s)) && s < 0x80 {
		return fmt.Sprintf("%3d %q", s, rune(s))
	}
	return fmt.Sprintf("%3d", s)
}
