package codec

import (
	"log/slog"
	"time"
)

// Stats describes one encode or decode run.
type Stats struct {
	Symbols     uint64        // number of bytes of the decoded form
	Unique      int           // number of distinct bytes
	HeaderBytes int           // length of the header text, without the delimiter
	DataBits    uint64        // number of data bits written or read
	Duration    time.Duration // wall time of the run
}

// PackedBytes returns the size of the packed representation.
func (s Stats) PackedBytes() uint64 {
	if s.Symbols == 0 {
		return 0
	}

	return uint64(s.HeaderBytes) + 1 + (s.DataBits+7)/8 //nolint:gosec
}

// TextBytes returns the size of the human-readable representation.
func (s Stats) TextBytes() uint64 {
	if s.Symbols == 0 {
		return 0
	}

	return uint64(s.HeaderBytes) + 1 + s.DataBits //nolint:gosec
}

// Ratio returns the original size divided by the packed size, or 0 for
// empty input.
func (s Stats) Ratio() float64 {
	packed := s.PackedBytes()
	if packed == 0 {
		return 0
	}

	return float64(s.Symbols) / float64(packed)
}

// SpaceSavings returns the fraction of the original size saved by packing.
// It is negative when the packed form is larger, as for tiny inputs where
// the header dominates.
func (s Stats) SpaceSavings() float64 {
	if s.Symbols == 0 {
		return 0
	}

	return 1 - float64(s.PackedBytes())/float64(s.Symbols)
}

// BitsPerSymbol returns the average code length.
func (s Stats) BitsPerSymbol() float64 {
	if s.Symbols == 0 {
		return 0
	}

	return float64(s.DataBits) / float64(s.Symbols)
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("symbols", s.Symbols),
		slog.Int("unique", s.Unique),
		slog.Int("headerBytes", s.HeaderBytes),
		slog.Uint64("dataBits", s.DataBits),
		slog.Uint64("packedBytes", s.PackedBytes()),
		slog.Duration("duration", s.Duration),
	)
}
