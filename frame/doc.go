// Package frame seals a packed Huffman stream into a self-describing,
// checksummed container.
//
// A frame is a fixed 32-byte header followed by the payload:
//
//	offset  size  field
//	0       4     magic "HUFF"
//	4       1     version (1)
//	5       1     flags: bit 0 set for big-endian integers, others zero
//	6       1     payload compression (format.CompressionType)
//	7       1     reserved, zero
//	8       8     payload size in bytes
//	16      8     packed stream size in bytes, before compression
//	24      8     xxHash64 of the packed stream
//
// The payload is the packed stream, optionally compressed with one of the
// compress codecs. Integer fields use the byte order recorded in the flags;
// the magic, version and flag bytes are read before the order is known and
// are single bytes.
package frame
