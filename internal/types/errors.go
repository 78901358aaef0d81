package types

import (
	"errors"
	"fmt"
)

// Error kinds. Every load failure matches exactly one of these via errors.Is.
var (
	// ErrTruncatedInput means fewer bytes remained than a read required.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedHeader means the magic signature or the top-level length
	// accounting did not match.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMalformedChunk means a structural expectation inside a chunk failed.
	ErrMalformedChunk = errors.New("malformed chunk")

	// ErrChunkLengthMismatch means decoding a chunk did not end exactly on its
	// declared boundary.
	ErrChunkLengthMismatch = errors.New("chunk length mismatch")
)

// TruncatedInputError is returned when a read runs past the end of the buffer.
type TruncatedInputError struct {
	Path   string
	What   string
	Offset int64
	Length int64
	Size   int64
	Limit  int64 // end of the enclosing chunk, 0 when the read was unbounded
}

func (e *TruncatedInputError) Error() string {
	if e.Limit > 0 && e.Limit < e.Size {
		return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed chunk end %d while reading %s",
			displayPath(e.Path), e.Length, e.Offset, e.Limit, e.What)
	}
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			displayPath(e.Path), e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		displayPath(e.Path), e.Length, e.Offset, e.Size, e.What)
}

// Is reports whether target is ErrTruncatedInput.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// MalformedHeaderError is returned when the container framing is invalid.
type MalformedHeaderError struct {
	Path   string
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%s: malformed header: %s", displayPath(e.Path), e.Reason)
}

// Is reports whether target is ErrMalformedHeader.
func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}

// MalformedChunkError is returned when a chunk's structure is invalid.
type MalformedChunkError struct {
	Path   string
	Tag    string
	Offset int64
	Reason string
}

func (e *MalformedChunkError) Error() string {
	return fmt.Sprintf("%s: malformed %q chunk at offset %d: %s",
		displayPath(e.Path), e.Tag, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedChunk.
func (e *MalformedChunkError) Is(target error) bool {
	return target == ErrMalformedChunk
}

// ChunkLengthMismatchError is returned when the cursor does not land on the
// declared end of a chunk after decoding it.
type ChunkLengthMismatchError struct {
	Path     string
	Tag      string
	Start    int64 // payload start
	Declared uint32
	Consumed int64
}

func (e *ChunkLengthMismatchError) Error() string {
	return fmt.Sprintf("%s: %q chunk at offset %d declares %d bytes but %d were consumed",
		displayPath(e.Path), e.Tag, e.Start, e.Declared, e.Consumed)
}

// Is reports whether target is ErrChunkLengthMismatch.
func (e *ChunkLengthMismatchError) Is(target error) bool {
	return target == ErrChunkLengthMismatch
}

func displayPath(path string) string {
	if path == "" {
		return "<memory>"
	}
	return path
}
