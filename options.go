package sessionfile

import (
	"log/slog"

	"golang.org/x/text/encoding"
)

// Option configures behavior when loading session files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	session, err := sessionfile.Load("song.ses",
//	    sessionfile.WithLogger(logger),
//	    sessionfile.WithMaxDepth(4),
//	)
type Option func(*loadOptions)

// loadOptions holds configuration for loading files.
type loadOptions struct {
	logger      *slog.Logger
	encoding    encoding.Encoding // nil = Windows-1252
	maxDepth    int
	maxFileSize int64 // 0 = no limit
}

// DefaultMaxFileSize is the largest file Load reads unless overridden.
const DefaultMaxFileSize = 256 << 20

// defaultOptions returns the default configuration.
func defaultOptions() *loadOptions {
	return &loadOptions{
		maxDepth:    8,
		maxFileSize: DefaultMaxFileSize,
	}
}

// WithLogger sends per-chunk debug records to logger.
//
// By default nothing is logged.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	session, err := sessionfile.Load("song.ses", sessionfile.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		o.logger = logger
	}
}

// WithTextEncoding sets the codepage used for fixed-width text fields
// (track titles, filenames).
//
// The default is Windows-1252. Pass unicode.UTF8 for sessions written with
// UTF-8 names, or encoding.Nop to keep the raw bytes.
func WithTextEncoding(enc encoding.Encoding) Option {
	return func(o *loadOptions) {
		o.encoding = enc
	}
}

// WithMaxDepth caps how deeply list containers may nest. Deeper input fails
// with ErrMalformedChunk. Default is 8.
func WithMaxDepth(depth int) Option {
	return func(o *loadOptions) {
		o.maxDepth = depth
	}
}

// WithMaxFileSize refuses files larger than n bytes. Reading stops once the
// limit is exceeded. Zero disables the limit. Default is DefaultMaxFileSize.
func WithMaxFileSize(n int64) Option {
	return func(o *loadOptions) {
		o.maxFileSize = n
	}
}
