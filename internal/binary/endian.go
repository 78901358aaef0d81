package binary

import (
	"encoding/binary"
	"math"
)

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// decodeLE interprets b as a little-endian T. len(b) must equal sizeOf[T]().
func decodeLE[T uint8 | uint16 | uint32 | uint64](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	case uint32:
		return T(binary.LittleEndian.Uint32(b))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}

// encodeLE appends the little-endian encoding of v to dst.
func encodeLE[T uint8 | uint16 | uint32 | uint64](dst []byte, v T) []byte {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return append(dst, byte(v))
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(dst, uint64(v))
	}
}

func decodeFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
