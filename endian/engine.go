// Package endian selects the byte order used for the integer fields of a
// sealed frame header.
//
// Frames are little-endian unless the encoder is configured otherwise; the
// choice is recorded in the header flags so a decoder can pick the matching
// engine with ForBigEndian.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, both of
// which binary.LittleEndian and binary.BigEndian satisfy.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForBigEndian returns the big-endian engine when big is set and the
// little-endian engine otherwise.
func ForBigEndian(big bool) EndianEngine {
	if big {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
