package compress

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/arloliu/huffman/format"
	"github.com/stretchr/testify/require"
)

var compressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func testPayload(size int) []byte {
	// A packed stream: a header line followed by skewed binary data.
	buf := bytes.NewBufferString("32 812 97 403 98 97 99 36 100 5\n")
	for i := 0; buf.Len() < size; i++ {
		buf.WriteByte(byte(i*i) & 0xF3)
	}

	return buf.Bytes()[:size]
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range compressionTypes {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err)
		require.NotNil(t, codec)

		shared, err := GetCodec(ct)
		require.NoError(t, err)
		require.IsType(t, codec, shared)
	}

	_, err := CreateCodec(format.CompressionType(0), "payload")
	require.ErrorContains(t, err, "invalid payload compression")

	_, err = GetCodec(format.CompressionType(42))
	require.ErrorContains(t, err, "unsupported compression type")
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	data := []byte("abc")
	c := NewNoOpCompressor()

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])

	out, err = c.Decompress(data, 99)
	require.NoError(t, err)
	require.Same(t, &data[0], &out[0])
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for _, ct := range compressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	for _, ct := range compressionTypes {
		for _, size := range []int{1, 33, 1024, 64 * 1024} {
			t.Run(fmt.Sprintf("%s/%d", ct, size), func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)

				data := testPayload(size)
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				for _, hint := range []int{len(data), 0} {
					out, err := codec.Decompress(compressed, hint)
					require.NoError(t, err)
					require.Equal(t, data, out, "size hint %d", hint)
				}
			})
		}
	}
}

func TestAllCodecs_RoundTripIncompressible(t *testing.T) {
	data := make([]byte, 4096)
	x := uint32(2463534242)
	for i := range data {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		data[i] = byte(x)
	}

	for _, ct := range compressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			out, err := codec.Decompress(compressed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA, 0xF9, 0xF8}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage, 64)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_WrongSizeHint(t *testing.T) {
	data := testPayload(1024)

	for _, ct := range []format.CompressionType{format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			_, err = codec.Decompress(compressed, len(data)-1)
			require.Error(t, err)
		})
	}
}

func TestLZ4_LargeExpansion(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 1<<20)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data), "needs the growing buffer path")

	out, err := codec.Decompress(compressed, 0)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	data := testPayload(16 * 1024)

	for _, ct := range compressionTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			var wg sync.WaitGroup
			errs := make(chan error, 16)
			for range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range 20 {
						compressed, err := codec.Compress(data)
						if err != nil {
							errs <- err
							return
						}
						out, err := codec.Decompress(compressed, len(data))
						if err != nil {
							errs <- err
							return
						}
						if !bytes.Equal(out, data) {
							errs <- fmt.Errorf("round trip mismatch")
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}
		})
	}
}

func TestLZ4_RejectsImpossibleSizeHint(t *testing.T) {
	codec := NewLZ4Compressor()
	compressed, err := codec.Compress([]byte("abcabcabc"))
	require.NoError(t, err)

	_, err = codec.Decompress(compressed, 1<<30)
	require.ErrorContains(t, err, "cannot decode")
}
