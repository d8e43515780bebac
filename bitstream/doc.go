// Package bitstream provides the byte/bit sinks and sources that carry an
// encoded stream.
//
// A stream is a line of text (the frequency header), a '\n' delimiter and a
// sequence of data bits. Two representations exist:
//
//   - Packed stores the data bits eight per byte, most significant bit
//     first, with the final byte padded with zero bits.
//   - Text stores one ASCII '0' or '1' character per data bit. It is the
//     human-readable form of the same stream.
//
// The decoder consumes bits by symbol count, so padding is never read and
// never needs to be distinguished from data.
package bitstream

// Sink receives an encoded stream.
//
// WriteText must be called at most once, before any WriteBits call. Close
// flushes buffered bits, padding the final packed byte, and must be called
// exactly once. Sinks never close the writers they wrap.
type Sink interface {
	// WriteText writes s followed by the '\n' delimiter.
	WriteText(s string) error
	// WriteBits appends bits given as a string of '0' and '1' characters.
	WriteBits(bits string) error
	// Close flushes the sink.
	Close() error
}

// Source yields an encoded stream.
type Source interface {
	// ReadText returns the text up to the '\n' delimiter, without it. If
	// the stream ends before a delimiter, the text read so far is returned
	// with a nil error.
	ReadText() (string, error)
	// ReadBit returns the next data bit as 0 or 1. It fails with
	// errs.ErrEndOfStream when no bits remain.
	ReadBit() (uint8, error)
	// Close releases the source. It does not close the wrapped reader.
	Close() error
}
