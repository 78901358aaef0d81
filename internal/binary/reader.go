// Package binary provides bounds-checked little-endian reading primitives over
// an in-memory buffer.
package binary

import (
	"github.com/simonhull/sessionfile/internal/types"
)

// Cursor is a forward-only reader over a fixed byte buffer.
//
// Reads are bounded by an end offset, initially the end of the buffer.
// Limit narrows it to a region such as a chunk payload so a record can never
// read into the bytes that follow it.
type Cursor struct {
	data   []byte
	path   string
	offset int64
	end    int64
}

// NewCursor creates a Cursor positioned at offset 0. path is only used in
// error messages.
func NewCursor(data []byte, path string) *Cursor {
	return &Cursor{
		data: data,
		path: path,
		end:  int64(len(data)),
	}
}

// Path returns the file path associated with this cursor.
func (c *Cursor) Path() string {
	return c.path
}

// Position returns the current absolute offset.
func (c *Cursor) Position() int64 {
	return c.offset
}

// Size returns the length of the underlying buffer.
func (c *Cursor) Size() int64 {
	return int64(len(c.data))
}

// Remaining returns the number of unread bytes before the current bound.
func (c *Cursor) Remaining() int64 {
	return c.end - c.offset
}

// Limit bounds reads to the next n bytes and returns the previous bound,
// to be handed back to Restore. n is clamped to Remaining.
func (c *Cursor) Limit(n int64) int64 {
	prev := c.end
	c.end = c.offset + min(max(n, 0), c.Remaining())
	return prev
}

// Restore reinstates a bound returned by Limit.
func (c *Cursor) Restore(end int64) {
	c.end = end
}

// ReadFixed returns the next n bytes and advances past them. The returned
// slice aliases the underlying buffer and must not be modified.
func (c *Cursor) ReadFixed(n int64, what string) ([]byte, error) {
	if err := c.check(n, what); err != nil {
		return nil, err
	}
	b := c.data[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

// ReadInto fills b from the buffer and advances past it.
func (c *Cursor) ReadInto(b []byte, what string) error {
	src, err := c.ReadFixed(int64(len(b)), what)
	if err != nil {
		return err
	}
	copy(b, src)
	return nil
}

// Skip advances the offset by n bytes without returning data.
func (c *Cursor) Skip(n int64, what string) error {
	if err := c.check(n, what); err != nil {
		return err
	}
	c.offset += n
	return nil
}

func (c *Cursor) check(n int64, what string) error {
	if n < 0 || n > c.Remaining() {
		return &types.TruncatedInputError{
			Path:   c.path,
			What:   what,
			Offset: c.offset,
			Length: n,
			Size:   int64(len(c.data)),
			Limit:  c.limit(),
		}
	}
	return nil
}

// limit reports the current bound when it is narrower than the buffer.
func (c *Cursor) limit() int64 {
	if c.end < int64(len(c.data)) {
		return c.end
	}
	return 0
}

// ReadLE reads a little-endian unsigned integer of type T and advances past it.
//
// Example:
//
//	length, err := binary.ReadLE[uint32](c, "chunk length")
func ReadLE[T uint8 | uint16 | uint32 | uint64](c *Cursor, what string) (T, error) {
	b, err := c.ReadFixed(int64(sizeOf[T]()), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeLE[T](b), nil
}

// ReadFloat64 reads a little-endian IEEE 754 double and advances past it.
func (c *Cursor) ReadFloat64(what string) (float64, error) {
	b, err := c.ReadFixed(8, what)
	if err != nil {
		return 0, err
	}
	return decodeFloat64(b), nil
}

// ReadTag reads a 4-byte chunk tag.
func (c *Cursor) ReadTag(what string) (string, error) {
	b, err := c.ReadFixed(4, what)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks when decoding packed records.
type ChainReader struct {
	*Cursor
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(c *Cursor) *ChainReader {
	return &ChainReader{Cursor: c}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadLE[T](cr.Cursor, what)
	if err != nil {
		cr.err = err
	}
	return val
}

// Float64 reads a double, accumulating any error.
func (cr *ChainReader) Float64(what string) float64 {
	if cr.err != nil {
		return 0
	}

	val, err := cr.Cursor.ReadFloat64(what)
	if err != nil {
		cr.err = err
	}
	return val
}

// Bytes fills b, accumulating any error.
func (cr *ChainReader) Bytes(b []byte, what string) {
	if cr.err != nil {
		return
	}
	cr.err = cr.Cursor.ReadInto(b, what)
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
