package sessionfile

import (
	"github.com/simonhull/sessionfile/internal/types"
)

// Error kinds, re-exported from internal/types. Use errors.Is to classify a
// load failure.
var (
	ErrTruncatedInput      = types.ErrTruncatedInput
	ErrMalformedHeader     = types.ErrMalformedHeader
	ErrMalformedChunk      = types.ErrMalformedChunk
	ErrChunkLengthMismatch = types.ErrChunkLengthMismatch
)

// TruncatedInputError is an alias to types.TruncatedInputError.
// Re-exporting from internal/types to maintain public API.
type TruncatedInputError = types.TruncatedInputError

// MalformedHeaderError is an alias to types.MalformedHeaderError.
// Re-exporting from internal/types to maintain public API.
type MalformedHeaderError = types.MalformedHeaderError

// MalformedChunkError is an alias to types.MalformedChunkError.
// Re-exporting from internal/types to maintain public API.
type MalformedChunkError = types.MalformedChunkError

// ChunkLengthMismatchError is an alias to types.ChunkLengthMismatchError.
// Re-exporting from internal/types to maintain public API.
type ChunkLengthMismatchError = types.ChunkLengthMismatchError
