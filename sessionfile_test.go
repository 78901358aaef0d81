package sessionfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/sessionfile"
	"github.com/simonhull/sessionfile/internal/sestest"
	"github.com/simonhull/sessionfile/internal/types"
)

func testSession() *sestest.Builder {
	return sestest.New().
		Header(sestest.NewHeader(44100, "test.ses")).
		Tempo(types.TempoRecord{BeatsPerMinute: 120, BeatsPerBar: 4, TicksPerBeat: 960}).
		Tracks(
			sestest.NewTrack("Vocals", 1, 1, false),
			sestest.NewTrack("Guitar", 0.8, 0.6, true),
		).
		Waves(sestest.NewWave(1, "C:\\Samples\\vox.wav")).
		Blocks(types.BlockRecord{ID: 1, WaveID: 1, TrackID: 1, SizeSamples: 44100})
}

func TestLoad(t *testing.T) {
	path := testSession().WriteFile(t)

	s, err := sessionfile.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Tempo.BeatsPerMinute != 120.0 {
		t.Errorf("BeatsPerMinute = %v, want 120", s.Tempo.BeatsPerMinute)
	}
	if len(s.Tracks) != 2 || s.Tracks[1].Title != "Guitar" || !s.Tracks[1].Mute {
		t.Errorf("unexpected tracks: %+v", s.Tracks)
	}

	w, ok := s.Wave(s.Blocks[0].WaveID)
	if !ok || w.BaseName() != "vox.wav" {
		t.Errorf("Wave(%d) = %+v, %v", s.Blocks[0].WaveID, w, ok)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := sessionfile.Load("/nonexistent/path.ses")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_NotASession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.wav")
	if err := os.WriteFile(path, []byte("RIFF\x00\x00\x00\x00WAVEfmt "), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := sessionfile.Load(path)
	if !errors.Is(err, sessionfile.ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}

	var he *sessionfile.MalformedHeaderError
	if !errors.As(err, &he) {
		t.Fatalf("expected *MalformedHeaderError, got %T", err)
	}
	if he.Path != path {
		t.Errorf("Path = %q, want %q", he.Path, path)
	}
}

func TestLoad_MaxFileSize(t *testing.T) {
	path := testSession().WriteFile(t)

	_, err := sessionfile.Load(path, sessionfile.WithMaxFileSize(16))
	if !errors.Is(err, sessionfile.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	if _, err := sessionfile.Load(path, sessionfile.WithMaxFileSize(0)); err != nil {
		t.Errorf("unlimited load failed: %v", err)
	}
}

func TestLoad_MaxDepth(t *testing.T) {
	nested := sestest.List(sestest.List(sestest.Chunk("wav ", sestest.EncodeWave(sestest.NewWave(1, "a.wav")))))
	data := sestest.File(nested)

	if _, err := sessionfile.LoadBytes(data); err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	_, err := sessionfile.LoadBytes(data, sessionfile.WithMaxDepth(1))
	if !errors.Is(err, sessionfile.ErrMalformedChunk) {
		t.Fatalf("expected ErrMalformedChunk, got %v", err)
	}
}

func TestLoadBytes_TextEncoding(t *testing.T) {
	// "Café" in UTF-8 is 43 61 66 C3 A9
	data := sestest.New().Tracks(sestest.NewTrack("Café", 1, 1, false)).Bytes()

	tests := []struct {
		name string
		opts []sessionfile.Option
		want string
	}{
		{"default windows-1252", nil, "CafÃ©"},
		{"utf-8", []sessionfile.Option{sessionfile.WithTextEncoding(unicode.UTF8)}, "Café"},
		{"raw bytes", []sessionfile.Option{sessionfile.WithTextEncoding(encoding.Nop)}, "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sessionfile.LoadBytes(data, tt.opts...)
			if err != nil {
				t.Fatalf("LoadBytes failed: %v", err)
			}
			if got := s.Tracks[0].Title; got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadBytes_ErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "bad signature",
			data: []byte("NOTASES!\x00\x00\x00\x00"),
			want: sessionfile.ErrMalformedHeader,
		},
		{
			name: "truncated tempo",
			data: sestest.File([]byte("tmpo\x20\x00\x00\x00\x00")),
			want: sessionfile.ErrTruncatedInput,
		},
		{
			name: "wrong list type",
			data: sestest.File([]byte("LISTINFO\x00\x00\x00\x00")),
			want: sessionfile.ErrMalformedChunk,
		},
		{
			name: "chunk longer than its record",
			data: sestest.New().Chunk("tmpo", make([]byte, 33)).Bytes(),
			want: sessionfile.ErrChunkLengthMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sessionfile.LoadBytes(tt.data)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if s != nil {
				t.Errorf("expected no session on failure, got %+v", s)
			}
		})
	}
}
