// Package header converts frequency tables to and from the textual header
// that precedes an encoded bitstream.
//
// A header lists "<symbol> <frequency>" pairs for every symbol with a nonzero
// frequency, in strictly ascending symbol order, separated by single spaces:
//
//	97 3 98 4 99 2
//
// The empty string stands for the empty alphabet. A header carries everything
// a decoder needs to rebuild the encoder's tree.
package header

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/freq"
)

// Pair is one (symbol, frequency) entry of a header.
type Pair struct {
	Symbol byte
	Freq   uint64
}

// Encode renders the nonzero entries of t in ascending symbol order.
func Encode(t freq.Table) string {
	var sb strings.Builder
	for s, f := range t {
		if f == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(f, 10))
	}

	return sb.String()
}

// Decode parses a header back into a frequency table.
//
// Tokens may be separated by any whitespace. Decode fails with
// errs.ErrFormat if the token count is odd, a token is not a decimal
// integer, a symbol is outside [0,255], a frequency is negative, or symbols
// are not strictly ascending. An empty or blank string yields an all-zero
// table.
func Decode(s string) (freq.Table, error) {
	var t freq.Table

	pairs, err := Pairs(s)
	if err != nil {
		return t, err
	}
	for _, p := range pairs {
		t[p.Symbol] = p.Freq
	}

	return t, nil
}

// Pairs parses a header into its (symbol, frequency) entries, validating it
// the same way as Decode.
func Pairs(s string) ([]Pair, error) {
	tokens := strings.Fields(s)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("%w: odd token count %d", errs.ErrFormat, len(tokens))
	}

	pairs := make([]Pair, 0, len(tokens)/2)
	prev := -1
	for i := 0; i < len(tokens); i += 2 {
		sym, err := parseInt(tokens[i])
		if err != nil {
			return nil, err
		}
		if sym < 0 || sym >= freq.Size {
			return nil, fmt.Errorf("%w: symbol %d out of range [0,%d]", errs.ErrFormat, sym, freq.Size-1)
		}
		if int(sym) <= prev {
			return nil, fmt.Errorf("%w: symbol %d follows %d", errs.ErrFormat, sym, prev)
		}
		prev = int(sym)

		f, err := parseFreq(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w for symbol %d", err, sym)
		}

		pairs = append(pairs, Pair{Symbol: byte(sym), Freq: f})
	}

	return pairs, nil
}

func parseInt(tok string) (int64, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %q is not an integer", errs.ErrFormat, tok)
	}

	return v, nil
}

func parseFreq(tok string) (uint64, error) {
	if v, err := strconv.ParseInt(tok, 10, 64); err == nil && v < 0 {
		return 0, fmt.Errorf("%w: negative frequency %d", errs.ErrFormat, v)
	}

	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: frequency %q is not an unsigned integer", errs.ErrFormat, tok)
	}

	return v, nil
}
