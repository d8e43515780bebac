package huffman

import (
	"bytes"

	"github.com/arloliu/huffman/bitstream"
	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/frame"
	"github.com/arloliu/huffman/internal/pool"
)

// EncodeBytes returns the packed encoding of src. Empty input encodes to an
// empty slice.
func EncodeBytes(src []byte, opts ...codec.EncoderOption) ([]byte, error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	if _, err := enc.Encode(src, bitstream.NewPackedWriter(buf)); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// DecodeBytes decodes a packed stream produced by EncodeBytes.
func DecodeBytes(packed []byte, opts ...codec.DecoderOption) ([]byte, error) {
	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	out, _, err := dec.Decode(bitstream.NewPackedReader(bytes.NewReader(packed)))

	return out, err
}

// Seal encodes src into a checksummed frame.
func Seal(src []byte, opts ...frame.Option) ([]byte, error) {
	s, err := frame.New(opts...)
	if err != nil {
		return nil, err
	}

	out, _, err := s.Seal(src)

	return out, err
}

// Open verifies and decodes a frame produced by Seal.
func Open(sealed []byte) ([]byte, error) {
	return frame.Open(sealed)
}
