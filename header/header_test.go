package header

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/freq"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", ""},
		{"single symbol", "dddd", "100 4"},
		{"three symbols", "aaabbbbcc", "97 3 98 4 99 2"},
		{"with space", "a bb ccc d", "32 3 97 1 98 2 99 3 100 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(freq.Count([]byte(tt.data))))
		})
	}
}

func TestDecode(t *testing.T) {
	var want freq.Table
	want[97] = 2
	want[98] = 4
	want[99] = 8
	want[100] = 16
	want[102] = 2

	got, err := Decode("97 2 98 4 99 8 100 16 102 2")
	require.NoError(t, err)
	require.Equal(t, want, got)

	t.Run("empty", func(t *testing.T) {
		got, err := Decode("")
		require.NoError(t, err)
		require.Equal(t, freq.Table{}, got)
	})

	t.Run("extra whitespace", func(t *testing.T) {
		got, err := Decode("  97\t2 98  4\n99 8 100 16 102 2 ")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("boundary symbols", func(t *testing.T) {
		got, err := Decode("0 1 255 7")
		require.NoError(t, err)
		require.Equal(t, uint64(1), got[0])
		require.Equal(t, uint64(7), got[255])
	})
}

func TestDecode_FormatErrors(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"odd token count", "97 3 98"},
		{"non-numeric symbol", "a 3"},
		{"non-numeric frequency", "97 x"},
		{"symbol too large", "256 1"},
		{"negative symbol", "-1 1"},
		{"negative frequency", "97 -3"},
		{"duplicate symbol", "97 1 97 2"},
		{"descending symbols", "98 1 97 2"},
		{"float frequency", "97 1.5"},
		{"frequency overflow", "97 18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.header)
			require.ErrorIs(t, err, errs.ErrFormat)
		})
	}
}

func TestPairs(t *testing.T) {
	pairs, err := Pairs("32 3 97 4")
	require.NoError(t, err)
	require.Equal(t, []Pair{{Symbol: ' ', Freq: 3}, {Symbol: 'a', Freq: 4}}, pairs)
}

func TestRoundTrip_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var tbl freq.Table
		n := rapid.IntRange(0, 40).Draw(t, "entries")
		for range n {
			sym := rapid.IntRange(0, 255).Draw(t, "sym")
			tbl[sym] = rapid.Uint64().Draw(t, "freq")
		}

		got, err := Decode(Encode(tbl))
		require.NoError(t, err)
		require.Equal(t, tbl, got)
	})
}
