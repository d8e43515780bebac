package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/huffman/errs"
	"github.com/icza/bitio"
)

const delimiter = '\n'

// PackedWriter is a Sink that packs data bits eight per byte.
type PackedWriter struct {
	bw     *bitio.Writer
	bits   uint64
	closed bool
}

var _ Sink = (*PackedWriter)(nil)

// NewPackedWriter returns a PackedWriter writing to w. Output is buffered
// unless w is an io.ByteWriter, and is flushed by Close.
func NewPackedWriter(w io.Writer) *PackedWriter {
	return &PackedWriter{bw: bitio.NewWriter(w)}
}

// WriteText writes s and the delimiter as whole bytes.
func (p *PackedWriter) WriteText(s string) error {
	if p.closed || p.bits != 0 {
		return fmt.Errorf("%w: text after data bits", errs.ErrSinkState)
	}

	if _, err := p.bw.Write([]byte(s)); err != nil {
		return err
	}

	return p.bw.WriteByte(delimiter)
}

// WriteBits appends bits, most significant first.
func (p *PackedWriter) WriteBits(bits string) error {
	if p.closed {
		return fmt.Errorf("%w: write after close", errs.ErrSinkState)
	}

	for len(bits) > 0 {
		chunk := bits[:min(len(bits), 64)]
		bits = bits[len(chunk):]

		v, err := parseBits(chunk)
		if err != nil {
			return err
		}
		if err := p.bw.WriteBits(v, uint8(len(chunk))); err != nil { //nolint:gosec
			return err
		}
		p.bits += uint64(len(chunk))
	}

	return nil
}

// Bits returns the number of data bits written so far.
func (p *PackedWriter) Bits() uint64 {
	return p.bits
}

// Close pads the final byte with zero bits and flushes it.
func (p *PackedWriter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	return p.bw.Close()
}

// PackedReader is a Source over a packed stream.
type PackedReader struct {
	br *bitio.Reader
}

var _ Source = (*PackedReader)(nil)

// NewPackedReader returns a PackedReader reading from r. Input is buffered
// unless r is an io.ByteReader.
func NewPackedReader(r io.Reader) *PackedReader {
	return &PackedReader{br: bitio.NewReader(r)}
}

// ReadText reads whole bytes up to the delimiter.
func (p *PackedReader) ReadText() (string, error) {
	var text []byte
	for {
		b, err := p.br.ReadByte()
		if errors.Is(err, io.EOF) {
			return string(text), nil
		}
		if err != nil {
			return "", err
		}
		if b == delimiter {
			return string(text), nil
		}
		text = append(text, b)
	}
}

// ReadBit reads the next bit.
func (p *PackedReader) ReadBit() (uint8, error) {
	bit, err := p.br.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, errs.ErrEndOfStream
		}
		return 0, err
	}
	if bit {
		return 1, nil
	}

	return 0, nil
}

// Close is a no-op; the wrapped reader is owned by the caller.
func (p *PackedReader) Close() error {
	return nil
}

// parseBits converts up to 64 '0'/'1' characters into an integer whose
// lowest len(bits) bits hold them, first character most significant.
func parseBits(bits string) (uint64, error) {
	var v uint64
	for i := range len(bits) {
		switch bits[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, fmt.Errorf("%w: %q at offset %d", errs.ErrInvalidBit, bits[i], i)
		}
	}

	return v, nil
}
