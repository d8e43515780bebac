// Package huffman is a deterministic Huffman codec over the byte alphabet.
//
// The tree is built from byte frequencies with a strict total order
// (frequency, then smallest symbol), so the frequency header written at the
// start of every stream is enough for a decoder to rebuild exactly the tree
// the encoder used. A stream is that header, a '\n' and the data bits, either
// packed eight per byte or written out as ASCII '0' and '1' characters.
//
// # Basic Usage
//
// Encoding and decoding in memory:
//
//	packed, _ := huffman.EncodeBytes([]byte("aaabbbbcc"))
//	data, _ := huffman.DecodeBytes(packed)
//
// Encoding a file writes both representations, the human-readable one to
// the named output and the packed one next to it:
//
//	stats, err := huffman.EncodeFile("in.txt", "out.txt") // also out_compressed.txt
//	_, err = huffman.DecodeFile("out_compressed.txt", "decoded.txt")
//
// Sealed frames add a binary header with an xxHash64 checksum and optional
// payload compression:
//
//	sealed, _ := huffman.Seal(data, frame.WithCompression(format.CompressionZstd))
//	data, _ = huffman.Open(sealed)
//
// # Package Structure
//
// This package wraps the codec, bitstream and frame packages for the common
// cases. Use them directly for streaming sinks, custom options or Stats.
package huffman
