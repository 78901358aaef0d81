//go:build unix

package sessionfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/simonhull/sessionfile"
)

// writeFIFO creates a named pipe and feeds data into it once a reader opens
// it. Stat reports a size of 0 for the pipe.
func writeFIFO(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipe.ses")
	if err := syscall.Mkfifo(path, 0o600); err != nil {
		t.Skipf("mkfifo unavailable: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return
		}
		defer f.Close()
		f.Write(data)
	}()
	t.Cleanup(func() { <-done })
	return path
}

func TestLoad_FIFO(t *testing.T) {
	path := writeFIFO(t, testSession().Bytes())

	s, err := sessionfile.Load(path)
	if err != nil {
		t.Fatalf("Load from pipe failed: %v", err)
	}
	if len(s.Tracks) != 2 || s.Tempo.BeatsPerMinute != 120 {
		t.Errorf("unexpected session from pipe: %s", s)
	}
}

func TestLoad_FIFOTooLarge(t *testing.T) {
	data := testSession().Bytes()
	path := writeFIFO(t, data)

	_, err := sessionfile.Load(path, sessionfile.WithMaxFileSize(int64(len(data)-1)))
	if !errors.Is(err, sessionfile.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}
