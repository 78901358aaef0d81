package binary

import (
	"math"
)

// Writer builds a little-endian byte stream in memory with offset tracking.
// It is used to assemble test fixtures.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return int64(len(w.buf))
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString appends s without a terminator.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteFixedString appends s truncated or zero-padded to exactly n bytes.
func (w *Writer) WriteFixedString(s string, n int) {
	field := make([]byte, n)
	copy(field, s)
	w.buf = append(w.buf, field...)
}

// WriteFloat64 appends a little-endian IEEE 754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.buf = encodeLE(w.buf, math.Float64bits(v))
}

// WriteLE appends a value of type T in little-endian byte order.
func WriteLE[T uint8 | uint16 | uint32 | uint64](w *Writer, val T) {
	w.buf = encodeLE(w.buf, val)
}
