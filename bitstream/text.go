package bitstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/huffman/errs"
)

// TextWriter is a Sink that writes one ASCII character per data bit.
type TextWriter struct {
	w      *bufio.Writer
	bits   uint64
	closed bool
}

var _ Sink = (*TextWriter)(nil)

// NewTextWriter returns a TextWriter writing to w. Output is buffered and
// flushed by Close.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteText writes s and the delimiter.
func (t *TextWriter) WriteText(s string) error {
	if t.closed || t.bits != 0 {
		return fmt.Errorf("%w: text after data bits", errs.ErrSinkState)
	}

	if _, err := t.w.WriteString(s); err != nil {
		return err
	}

	return t.w.WriteByte(delimiter)
}

// WriteBits writes bits verbatim after checking they are all '0' or '1'.
func (t *TextWriter) WriteBits(bits string) error {
	if t.closed {
		return fmt.Errorf("%w: write after close", errs.ErrSinkState)
	}

	for i := range len(bits) {
		if bits[i] != '0' && bits[i] != '1' {
			return fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidBit, bits[i], i)
		}
	}
	if _, err := t.w.WriteString(bits); err != nil {
		return err
	}
	t.bits += uint64(len(bits))

	return nil
}

// Bits returns the number of data bits written so far.
func (t *TextWriter) Bits() uint64 {
	return t.bits
}

// Close flushes buffered output.
func (t *TextWriter) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true

	return t.w.Flush()
}

// TextReader is a Source over the human-readable representation.
type TextReader struct {
	r *bufio.Reader
}

var _ Source = (*TextReader)(nil)

// NewTextReader returns a TextReader reading from r.
func NewTextReader(r io.Reader) *TextReader {
	return &TextReader{r: bufio.NewReader(r)}
}

// ReadText reads the header line.
func (t *TextReader) ReadText() (string, error) {
	line, err := t.r.ReadString(delimiter)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if len(line) > 0 && line[len(line)-1] == delimiter {
		line = line[:len(line)-1]
	}

	return line, nil
}

// ReadBit reads the next '0' or '1' character. A line break ends the data.
func (t *TextReader) ReadBit() (uint8, error) {
	c, err := t.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, errs.ErrEndOfStream
	}
	if err != nil {
		return 0, err
	}

	switch c {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	case '\n', '\r':
		return 0, errs.ErrEndOfStream
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidBit, c)
	}
}

// Close is a no-op; the wrapped reader is owned by the caller.
func (t *TextReader) Close() error {
	return nil
}
