// Package compress provides the general-purpose codecs that can wrap a
// packed Huffman stream inside a sealed frame.
//
// A packed stream is already entropy coded, so a second pass mostly pays off
// for the header text and for long runs that Huffman coding cannot shrink
// below one bit per symbol. The supported algorithms are:
//   - None: the payload is stored as is
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest decompression (pierrec/lz4 block format)
//
// Every codec is stateless from the caller's point of view and safe for
// concurrent use; encoders and decoders are pooled internally.
package compress
