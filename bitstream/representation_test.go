package bitstream

import (
	"bytes"
	"testing"

	"github.com/arloliu/huffman/format"
	"github.com/stretchr/testify/require"
)

func TestNewSinkSource(t *testing.T) {
	for _, rep := range []format.Representation{format.Packed, format.Text} {
		t.Run(rep.String(), func(t *testing.T) {
			var buf bytes.Buffer
			sink, err := NewSink(rep, &buf)
			require.NoError(t, err)
			require.NoError(t, sink.WriteText("97 1 98 1"))
			require.NoError(t, sink.WriteBits("10"))
			require.NoError(t, sink.Close())

			src, err := NewSource(rep, &buf)
			require.NoError(t, err)
			text, err := src.ReadText()
			require.NoError(t, err)
			require.Equal(t, "97 1 98 1", text)

			b0, err := src.ReadBit()
			require.NoError(t, err)
			b1, err := src.ReadBit()
			require.NoError(t, err)
			require.Equal(t, []uint8{1, 0}, []uint8{b0, b1})
		})
	}

	_, err := NewSink(format.Representation(0), &bytes.Buffer{})
	require.Error(t, err)
	_, err = NewSource(format.Representation(9), &bytes.Buffer{})
	require.Error(t, err)
}
