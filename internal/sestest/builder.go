// Package sestest assembles synthetic session files for tests.
package sestest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/types"
)

// Magic is the session file signature.
var Magic = []byte("COOLNESS")

// Builder collects top-level chunks and frames them as a session file.
type Builder struct {
	chunks [][]byte
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Header appends a "hdr " chunk.
func (b *Builder) Header(h types.HeaderRecord) *Builder {
	return b.Raw(Chunk("hdr ", EncodeHeader(h)))
}

// Tempo appends a "tmpo" chunk.
func (b *Builder) Tempo(t types.TempoRecord) *Builder {
	return b.Raw(Chunk("tmpo", EncodeTempo(t)))
}

// Tracks appends a "trks" chunk holding the given tracks.
func (b *Builder) Tracks(tracks ...types.TrackRecord) *Builder {
	w := binary.NewWriter()
	binary.WriteLE(w, uint32(len(tracks)))
	for _, t := range tracks {
		w.WriteBytes(EncodeTrack(t))
	}
	return b.Raw(Chunk("trks", w.Bytes()))
}

// Waves appends a LIST/FILE container holding one "wav " chunk per wave.
func (b *Builder) Waves(waves ...types.WaveRecord) *Builder {
	var payload []byte
	for _, wv := range waves {
		payload = append(payload, Chunk("wav ", EncodeWave(wv))...)
	}
	return b.Raw(List(payload))
}

// Blocks appends a "blk " chunk holding the given placements.
func (b *Builder) Blocks(blocks ...types.BlockRecord) *Builder {
	w := binary.NewWriter()
	binary.WriteLE(w, uint32(len(blocks)))
	for _, blk := range blocks {
		w.WriteBytes(EncodeBlock(blk))
	}
	return b.Raw(Chunk("blk ", w.Bytes()))
}

// Chunk appends a chunk with an arbitrary tag and payload.
func (b *Builder) Chunk(tag string, payload []byte) *Builder {
	return b.Raw(Chunk(tag, payload))
}

// Raw appends bytes verbatim.
func (b *Builder) Raw(p []byte) *Builder {
	b.chunks = append(b.chunks, p)
	return b
}

// Bytes returns the framed session file.
func (b *Builder) Bytes() []byte {
	return File(b.chunks...)
}

// WriteFile writes the session into a temporary directory and returns its path.
func (b *Builder) WriteFile(tb testing.TB) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), "test.ses")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

// File frames chunks with the signature and the top-level length.
func File(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}
	w := binary.NewWriter()
	w.WriteBytes(Magic)
	binary.WriteLE(w, uint32(len(body)))
	w.WriteBytes(body)
	return w.Bytes()
}

// Chunk encodes tag, payload length and payload.
func Chunk(tag string, payload []byte) []byte {
	w := binary.NewWriter()
	w.WriteFixedString(tag, 4)
	binary.WriteLE(w, uint32(len(payload)))
	w.WriteBytes(payload)
	return w.Bytes()
}

// List encodes a LIST wrapper of type FILE around payload.
func List(payload []byte) []byte {
	w := binary.NewWriter()
	w.WriteString("LIST")
	w.WriteBytes(Chunk("FILE", payload))
	return w.Bytes()
}
