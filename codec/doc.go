// Package codec implements the Huffman encode and decode pipelines.
//
// Encoding counts byte frequencies, builds the tree, derives the code table
// and writes the frequency header followed by the code of every input byte
// to a bitstream.Sink:
//
//	enc, _ := codec.NewEncoder()
//	stats, err := enc.Encode(data, bitstream.NewPackedWriter(w))
//
// Decoding reads the header back from a bitstream.Source, rebuilds the same
// tree and walks it one bit at a time until the number of symbols announced
// by the header has been produced:
//
//	dec, _ := codec.NewDecoder()
//	data, stats, err := dec.Decode(bitstream.NewPackedReader(r))
//
// Empty input produces an empty stream with no header at all, and input made
// of a single distinct byte produces a header with no data bits. Both are
// decoded without reading a single bit.
//
// Encoder and Decoder are immutable once built and safe for concurrent use.
package codec
