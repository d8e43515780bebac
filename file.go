package huffman

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/huffman/bitstream"
	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/format"
	"go.uber.org/multierr"
)

// CompressedPath returns the path of the packed file written next to the
// human-readable output out: "_compressed" is inserted before the
// extension, so "out.txt" becomes "out_compressed.txt".
func CompressedPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + "_compressed" + ext
}

// EncodeFile encodes the file in and writes two representations of the
// result: the human-readable stream to out and the packed stream to
// CompressedPath(out). Both files are created or truncated; an empty input
// leaves both empty.
//
// Errors opening or reading files are returned unmodified, so
// errors.Is(err, fs.ErrNotExist) works for a missing input.
func EncodeFile(in, out string, opts ...codec.EncoderOption) (_ codec.Stats, err error) {
	enc, err := codec.NewEncoder(opts...)
	if err != nil {
		return codec.Stats{}, err
	}

	src, err := os.ReadFile(in)
	if err != nil {
		return codec.Stats{}, err
	}

	textFile, err := os.Create(out)
	if err != nil {
		return codec.Stats{}, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(textFile))

	packedFile, err := os.Create(CompressedPath(out))
	if err != nil {
		return codec.Stats{}, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(packedFile))

	sink := bitstream.NewTee(bitstream.NewTextWriter(textFile), bitstream.NewPackedWriter(packedFile))

	return enc.Encode(src, sink)
}

// DecodeFile decodes the packed stream in the file encoded and writes the
// result to out. Nothing is written if decoding fails.
func DecodeFile(encoded, out string, opts ...codec.DecoderOption) (codec.Stats, error) {
	return DecodeFileAs(format.Packed, encoded, out, opts...)
}

// DecodeFileAs is DecodeFile for a stream in the given representation.
func DecodeFileAs(rep format.Representation, encoded, out string, opts ...codec.DecoderOption) (_ codec.Stats, err error) {
	dec, err := codec.NewDecoder(opts...)
	if err != nil {
		return codec.Stats{}, err
	}

	f, err := os.Open(encoded)
	if err != nil {
		return codec.Stats{}, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	src, err := bitstream.NewSource(rep, bufio.NewReader(f))
	if err != nil {
		return codec.Stats{}, err
	}

	data, stats, err := dec.Decode(src)
	if err != nil {
		return codec.Stats{}, err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil { //nolint:gosec
		return codec.Stats{}, err
	}

	return stats, nil
}
