package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringers(t *testing.T) {
	require.Equal(t, "Heap", QueueHeap.String())
	require.Equal(t, "List", QueueList.String())
	require.Equal(t, "Unknown", QueueType(0).String())

	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())

	require.Equal(t, "Packed", Packed.String())
	require.Equal(t, "Text", Text.String())
	require.Equal(t, "Unknown", Representation(0).String())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"zstd", CompressionZstd, true},
		{"S2", CompressionS2, true},
		{"lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCompression(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
