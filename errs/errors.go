// Package errs defines the sentinel errors returned by the huffman packages.
//
// Errors are usually wrapped with additional detail using fmt.Errorf and %w,
// so callers should compare with errors.Is rather than ==.
package errs

import "errors"

// Header and bitstream errors.
var (
	// ErrFormat reports a malformed frequency header: an odd token count,
	// a non-numeric token, a symbol outside [0,255], a negative frequency or
	// symbols that are not in strictly ascending order.
	ErrFormat = errors.New("malformed frequency header")

	// ErrTruncatedStream reports that a bit source ran out before the number
	// of symbols announced by the header was decoded.
	ErrTruncatedStream = errors.New("truncated bit stream")

	// ErrEndOfStream is returned by a bit source when no more bits are available.
	ErrEndOfStream = errors.New("end of bit stream")

	// ErrInvalidBit is returned by the human-readable bit source when the data
	// section contains a character other than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit character")

	// ErrSymbolCountOverflow reports a header whose total symbol count cannot
	// be materialized in memory.
	ErrSymbolCountOverflow = errors.New("symbol count overflows output size")

	// ErrSinkState is returned when a bit sink is used out of order: text
	// written after data bits, or any write after Close.
	ErrSinkState = errors.New("invalid bit sink state")
)

// Ordered sequence errors.
var (
	// ErrIndexOutOfRange is returned by ordered.List.Pop for a negative index
	// or an index not less than the list size.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyQueue is returned when popping from an empty priority queue.
	ErrEmptyQueue = errors.New("queue is empty")
)

// Frame errors.
var (
	ErrInvalidMagicNumber = errors.New("invalid frame magic number")
	ErrInvalidHeaderSize  = errors.New("invalid frame header size")
	ErrInvalidHeaderFlags = errors.New("invalid frame header flags")
	ErrUnsupportedVersion = errors.New("unsupported frame version")
	ErrChecksumMismatch   = errors.New("frame checksum mismatch")
	ErrSizeMismatch       = errors.New("frame size mismatch")
)
