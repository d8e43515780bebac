package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxBlockSize bounds the buffer grown while decompressing a block whose
// size is unknown.
const lz4MaxBlockSize = 128 * 1024 * 1024

// lz4MaxRatio is an upper bound on the expansion of a block: extended
// match lengths add 255 bytes of output per byte of input.
const lz4MaxRatio = 256

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor uses the raw LZ4 block format. Blocks do not store their
// decoded length, so Decompress relies on the size hint when it has one.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4Compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block. The destination is sized
// to the worst-case bound, so incompressible input still yields a block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block.
//
// With a positive size the destination is allocated exactly and the decoded
// length must match. Without one the buffer starts at four times the input
// and doubles on ErrInvalidSourceShortBuffer up to 128MiB.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if size > 0 {
		if size/lz4MaxRatio > len(data)+16 {
			return nil, fmt.Errorf("lz4 block of %d bytes cannot decode to %d bytes", len(data), size)
		}
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			return nil, err
		}
		if n != size {
			return nil, lz4.ErrInvalidSourceShortBuffer
		}
		return buf, nil
	}

	for bufSize := len(data) * 4; bufSize <= lz4MaxBlockSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
