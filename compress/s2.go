package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor uses the S2 block format, which records the decoded length
// itself.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2Compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. size, when positive, must match the
// decoded length stored in the block.
func (c S2Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if size > 0 {
		n, err := s2.DecodedLen(data)
		if err != nil {
			return nil, err
		}
		if n != size {
			return nil, fmt.Errorf("s2 block decodes to %d bytes, expected %d", n, size)
		}
	}

	return s2.Decode(nil, data)
}
