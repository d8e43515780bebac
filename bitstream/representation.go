package bitstream

import (
	"fmt"
	"io"

	"github.com/arloliu/huffman/format"
)

// NewSink returns the Sink for rep writing to w.
func NewSink(rep format.Representation, w io.Writer) (Sink, error) {
	switch rep {
	case format.Packed:
		return NewPackedWriter(w), nil
	case format.Text:
		return NewTextWriter(w), nil
	default:
		return nil, fmt.Errorf("invalid representation: %v", rep)
	}
}

// NewSource returns the Source for rep reading from r.
func NewSource(rep format.Representation, r io.Reader) (Source, error) {
	switch rep {
	case format.Packed:
		return NewPackedReader(r), nil
	case format.Text:
		return NewTextReader(r), nil
	default:
		return nil, fmt.Errorf("invalid representation: %v", rep)
	}
}
