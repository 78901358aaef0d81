package sessionfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/sessionfile/internal/ses"
	"github.com/simonhull/sessionfile/internal/types"
)

// Session is an alias to types.Session.
// Re-exporting from internal/types to maintain public API.
type Session = types.Session

// Tempo is an alias to types.Tempo.
type Tempo = types.Tempo

// Track is an alias to types.Track.
type Track = types.Track

// Wave is an alias to types.Wave.
type Wave = types.Wave

// Block is an alias to types.Block.
type Block = types.Block

// ErrFileTooLarge is returned when a file exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// Load reads and decodes the session file at path.
//
// The file is read into memory in full and closed before decoding starts.
// Load either returns a complete Session or the first failure encountered;
// classify failures with errors.Is against ErrTruncatedInput,
// ErrMalformedHeader, ErrMalformedChunk and ErrChunkLengthMismatch.
//
// Example:
//
//	session, err := sessionfile.Load("song.ses")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%.1f BPM, %d tracks\n", session.Tempo.BeatsPerMinute, len(session.Tracks))
func Load(path string, opts ...Option) (*Session, error) {
	options := applyOptions(opts)

	data, err := readFile(path, options.maxFileSize)
	if err != nil {
		return nil, err
	}

	return decode(data, path, options)
}

// LoadBytes decodes a session file already held in memory.
func LoadBytes(data []byte, opts ...Option) (*Session, error) {
	return decode(data, "", applyOptions(opts))
}

// LoadContext loads a file with context support for cancellation.
//
// Decoding an in-memory buffer cannot block, so the context is only checked
// before the file is read.
func LoadContext(ctx context.Context, path string, opts ...Option) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Load(path, opts...)
}

// LoadMany loads multiple session files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining work and is returned.
//
// Example:
//
//	sessions, err := sessionfile.LoadMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, s := range sessions {
//		fmt.Printf("%s: %s\n", paths[i], s)
//	}
func LoadMany(ctx context.Context, paths []string, opts ...Option) ([]*Session, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([]*Session, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			session, err := LoadContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = session
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func applyOptions(opts []Option) *loadOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func readFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	// Size is taken from what is read, not from Stat, so pipes and
	// character devices are read in full.
	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%s: %w: more than %d bytes", path, ErrFileTooLarge, limit)
	}
	return data, nil
}

func decode(data []byte, path string, options *loadOptions) (*Session, error) {
	return ses.Decode(data, path, ses.Options{
		Logger:   options.logger,
		Encoding: options.encoding,
		MaxDepth: options.maxDepth,
	})
}
