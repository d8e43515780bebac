package frame

import (
	"fmt"

	"github.com/arloliu/huffman/endian"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/format"
)

const (
	// HeaderSize is the size of the frame header.
	HeaderSize = 32
	// Magic identifies a frame.
	Magic = "HUFF"
	// Version is the only supported frame version.
	Version = 1

	FlagBigEndian     = 0x01 // FlagBigEndian marks big-endian integer fields.
	reservedFlagsMask = 0xFE
)

// Header is the decoded frame header.
type Header struct {
	Version     uint8
	Flags       uint8
	Compression format.CompressionType
	PayloadSize uint64
	StreamSize  uint64
	Checksum    uint64
}

// IsBigEndian reports whether integer fields are big-endian.
func (h *Header) IsBigEndian() bool {
	return h.Flags&FlagBigEndian != 0
}

func (h *Header) engine() endian.EndianEngine {
	return endian.ForBigEndian(h.IsBigEndian())
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.engine()

	copy(b[0:4], Magic)
	b[4] = h.Version
	b[5] = h.Flags
	b[6] = uint8(h.Compression)
	engine.PutUint64(b[8:16], h.PayloadSize)
	engine.PutUint64(b[16:24], h.StreamSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// Parse parses exactly HeaderSize bytes into h and validates them.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if string(data[0:4]) != Magic {
		return fmt.Errorf("%w: %q", errs.ErrInvalidMagicNumber, data[0:4])
	}

	h.Version = data[4]
	h.Flags = data[5]
	h.Compression = format.CompressionType(data[6])

	engine := h.engine()
	h.PayloadSize = engine.Uint64(data[8:16])
	h.StreamSize = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint64(data[24:32])

	if data[7] != 0 {
		return fmt.Errorf("%w: reserved byte is %#x", errs.ErrInvalidHeaderFlags, data[7])
	}

	return h.Validate()
}

// Validate checks the version, flags and compression type.
func (h *Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Flags&reservedFlagsMask != 0 {
		return fmt.Errorf("%w: %#x", errs.ErrInvalidHeaderFlags, h.Flags)
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidHeaderFlags, uint8(h.Compression))
	}
}

// ParseHeader parses the header at the start of data, which may be longer
// than HeaderSize.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
