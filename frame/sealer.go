package frame

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/huffman/bitstream"
	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/compress"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/format"
	"github.com/arloliu/huffman/internal/hash"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/internal/pool"
)

// Config holds the Sealer settings.
type Config struct {
	compression format.CompressionType
	bigEndian   bool
	codecOpts   []codec.Option
}

// Option configures a Sealer.
type Option = options.Option[*Config]

// WithCompression sets the payload compression used by Seal.
// The default is format.CompressionNone. Unknown types make New fail.
func WithCompression(ct format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = ct
	})
}

// WithLittleEndian writes little-endian header integers. It is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = false
	})
}

// WithBigEndian writes big-endian header integers.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.bigEndian = true
	})
}

// WithCodecOptions passes opts to the underlying encoder and decoder.
func WithCodecOptions(opts ...codec.Option) Option {
	return options.NoError(func(c *Config) {
		c.codecOpts = append(c.codecOpts, opts...)
	})
}

// Sealer seals data into frames and opens them again. It is safe for
// concurrent use.
type Sealer struct {
	enc         *codec.Encoder
	dec         *codec.Decoder
	compressor  compress.Compressor
	compression format.CompressionType
	bigEndian   bool
}

// New creates a Sealer. It fails only for invalid options.
func New(opts ...Option) (*Sealer, error) {
	cfg := &Config{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, err
	}

	enc, err := codec.NewEncoder(cfg.codecOpts...)
	if err != nil {
		return nil, err
	}
	dec, err := codec.NewDecoder(cfg.codecOpts...)
	if err != nil {
		return nil, err
	}

	return &Sealer{
		enc:         enc,
		dec:         dec,
		compressor:  compressor,
		compression: cfg.compression,
		bigEndian:   cfg.bigEndian,
	}, nil
}

// Seal encodes src and returns the complete frame.
func (s *Sealer) Seal(src []byte) ([]byte, codec.Stats, error) {
	stream := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(stream)

	digest := hash.NewDigest()
	stats, err := s.enc.Encode(src, bitstream.NewPackedWriter(io.MultiWriter(stream, digest)))
	if err != nil {
		return nil, stats, err
	}

	payload, err := s.compressor.Compress(stream.Bytes())
	if err != nil {
		return nil, stats, fmt.Errorf("compress payload: %w", err)
	}

	h := Header{
		Version:     Version,
		Compression: s.compression,
		PayloadSize: uint64(len(payload)),
		StreamSize:  uint64(stream.Len()),
		Checksum:    digest.Sum64(),
	}
	if s.bigEndian {
		h.Flags |= FlagBigEndian
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, stats, nil
}

// Open verifies a frame and returns the decoded data.
//
// The payload is decompressed with the codec named in the header, so a
// Sealer opens frames sealed with any compression.
func (s *Sealer) Open(data []byte) ([]byte, codec.Stats, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, codec.Stats{}, err
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != h.PayloadSize {
		return nil, codec.Stats{}, fmt.Errorf("%w: payload is %d bytes, header says %d",
			errs.ErrSizeMismatch, len(payload), h.PayloadSize)
	}
	if h.StreamSize > math.MaxInt {
		return nil, codec.Stats{}, fmt.Errorf("%w: stream size %d", errs.ErrSizeMismatch, h.StreamSize)
	}

	c, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, codec.Stats{}, err
	}
	stream, err := c.Decompress(payload, int(h.StreamSize))
	if err != nil {
		return nil, codec.Stats{}, fmt.Errorf("decompress payload: %w", err)
	}
	if uint64(len(stream)) != h.StreamSize {
		return nil, codec.Stats{}, fmt.Errorf("%w: stream is %d bytes, header says %d",
			errs.ErrSizeMismatch, len(stream), h.StreamSize)
	}
	if sum := hash.Checksum(stream); sum != h.Checksum {
		return nil, codec.Stats{}, fmt.Errorf("%w: got %#016x, want %#016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return s.dec.Decode(bitstream.NewPackedReader(bytes.NewReader(stream)))
}

var defaultSealer = &Sealer{
	enc:         mustEncoder(),
	dec:         mustDecoder(),
	compressor:  compress.NewNoOpCompressor(),
	compression: format.CompressionNone,
}

func mustEncoder() *codec.Encoder {
	enc, err := codec.NewEncoder()
	if err != nil {
		panic(err)
	}
	return enc
}

func mustDecoder() *codec.Decoder {
	dec, err := codec.NewDecoder()
	if err != nil {
		panic(err)
	}
	return dec
}

// Open opens a frame with default settings. Any compression is accepted.
func Open(data []byte) ([]byte, error) {
	out, _, err := defaultSealer.Open(data)
	return out, err
}
