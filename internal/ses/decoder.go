// Package ses decodes the chunked binary session container.
//
// A session file starts with an 8-byte signature and a 32-bit length that
// covers the rest of the file. The remainder is a run of chunks, each a
// 4-byte tag, a 32-bit little-endian payload length and the payload itself.
// A "LIST" tag wraps a typed container whose children are chunks again.
package ses

import (
	"bytes"
	"fmt"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/types"
)

// Magic is the file signature, the little-endian bytes of 0x5353454e4c4f4f43.
var Magic = [8]byte{'C', 'O', 'O', 'L', 'N', 'E', 'S', 'S'}

// preambleSize is the signature plus the top-level length field.
const preambleSize = 12

// DefaultMaxDepth is the container nesting limit used when Options.MaxDepth
// is zero.
const DefaultMaxDepth = 8

// Options configures a decode.
type Options struct {
	// Logger receives per-chunk debug records. Nil discards.
	Logger *slog.Logger

	// Encoding is the codepage of fixed-width text fields. Nil means
	// Windows-1252.
	Encoding encoding.Encoding

	// MaxDepth caps list container nesting.
	MaxDepth int
}

type decoder struct {
	c        *binary.Cursor
	session  *types.Session
	text     *encoding.Decoder
	log      *slog.Logger
	maxDepth int
}

// Decode decodes a complete session file held in data. path is used only in
// error messages and may be empty.
func Decode(data []byte, path string, opts Options) (*types.Session, error) {
	d := newDecoder(data, path, opts)

	if len(data) < len(Magic) || !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return nil, &types.MalformedHeaderError{
			Path:   path,
			Reason: "missing session signature",
		}
	}
	if err := d.c.Skip(int64(len(Magic)), "signature"); err != nil {
		return nil, err
	}

	declared, err := binary.ReadLE[uint32](d.c, "file length")
	if err != nil {
		return nil, err
	}
	if int64(declared)+preambleSize != d.c.Size() {
		return nil, &types.MalformedHeaderError{
			Path: path,
			Reason: fmt.Sprintf("declared length %d (+%d) does not match file size %d",
				declared, preambleSize, d.c.Size()),
		}
	}
	d.log.Debug("session", "path", path, "length", declared)

	for d.c.Remaining() > 0 {
		if _, err := d.walk(0); err != nil {
			return nil, err
		}
	}

	return d.session, nil
}

func newDecoder(data []byte, path string, opts Options) *decoder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	enc := opts.Encoding
	if enc == nil {
		enc = charmap.Windows1252
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &decoder{
		c: binary.NewCursor(data, path),
		session: &types.Session{
			Tracks: []types.Track{},
			Waves:  []types.Wave{},
			Blocks: []types.Block{},
		},
		text:     enc.NewDecoder(),
		log:      logger,
		maxDepth: maxDepth,
	}
}
