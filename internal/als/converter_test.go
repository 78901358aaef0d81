package als

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/sessionfile/internal/types"
)

func testSession() *types.Session {
	return &types.Session{
		SampleRate: 44100,
		Tempo:      types.Tempo{BeatsPerMinute: 120, BeatsPerBar: 4, TicksPerBeat: 960},
		Tracks: []types.Track{
			{Title: "Vocals & Pads", LeftVolume: 1, RightVolume: 1},
			{Title: "Guitar", LeftVolume: 0.5, RightVolume: 1, Mute: true},
		},
		Waves: []types.Wave{
			{ID: 7, Filename: `C:\Takes\vox.wav`},
		},
		Blocks: []types.Block{
			{ID: 1, TrackID: 1, WaveID: 7, OffsetSamples: 44100, SizeSamples: 88200, WaveOffsetSamples: 22050},
		},
	}
}

func convert(t *testing.T, c *Converter, s *types.Session) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Convert(&buf, s); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	return buf.String()
}

func TestConvert(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out := convert(t, c, testSession())

	// 120 BPM: 44100 samples is one second, two beats.
	for _, want := range []string{
		`<Manual Value="120" />`,
		`<Manual Value="201" />`,
		`<AudioTrack Id="8">`,
		`<AudioTrack Id="9">`,
		`Value="Vocals &amp; Pads"`,
		`<AudioClip Id="0" Time="2">`,
		`<CurrentStart Value="2" />`,
		`<CurrentEnd Value="6" />`,
		`<LoopStart Value="1" />`,
		`<LoopEnd Value="5" />`,
		`<Name Value="vox.wav" />`,
		`<ColorIndex Value="20" />`,
		`SecTime="10000" BeatTime="10000"`,
		`<NextPointeeId Value="10" />`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}

	if strings.Count(out, "<AudioClip ") != 1 {
		t.Errorf("expected exactly one clip, got %d", strings.Count(out, "<AudioClip "))
	}
}

func TestConvert_WellFormed(t *testing.T) {
	c, err := New(WithSampleDir(`Samples\Takes`))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out := convert(t, c, testSession())

	dec := xml.NewDecoder(strings.NewReader(out))
	var dirs []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "RelativePathElement" {
			for _, a := range se.Attr {
				if a.Name.Local == "Dir" {
					dirs = append(dirs, a.Value)
				}
			}
		}
	}

	if len(dirs) != 2 || dirs[0] != "Samples" || dirs[1] != "Takes" {
		t.Errorf("relative path = %v, want [Samples Takes]", dirs)
	}
}

func TestConvert_Mute(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	out := convert(t, c, testSession())

	// Speaker on for the first track, off for the muted one.
	first := strings.Index(out, `<Manual Value="true" />`)
	second := strings.Index(out, `<Manual Value="false" />`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("unexpected speaker states in output")
	}
}

func TestConvert_UnknownWave(t *testing.T) {
	s := testSession()
	s.Blocks[0].WaveID = 99

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = c.Convert(&buf, s)

	var uw *UnknownWaveError
	if !errors.As(err, &uw) {
		t.Fatalf("expected *UnknownWaveError, got %v", err)
	}
	if uw.BlockID != 1 || uw.WaveID != 99 {
		t.Errorf("UnknownWaveError = %+v", uw)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written on failure")
	}
}

func TestConvert_NoSampleRate(t *testing.T) {
	s := testSession()
	s.SampleRate = 0

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Convert(io.Discard, s); !errors.Is(err, ErrNoSampleRate) {
		t.Fatalf("expected ErrNoSampleRate, got %v", err)
	}

	// Without blocks there is nothing to place in time.
	s.Blocks = nil
	if err := c.Convert(io.Discard, s); err != nil {
		t.Errorf("Convert without blocks failed: %v", err)
	}
}

func TestConvert_EmptySession(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	out := convert(t, c, &types.Session{})
	if strings.Contains(out, "<AudioTrack") {
		t.Error("empty session should produce no tracks")
	}
	if !strings.Contains(out, `<Manual Value="197" />`) {
		t.Error("time signature should fall back to the base value")
	}
}

func TestNewFromTemplates(t *testing.T) {
	dir := t.TempDir()
	root := `{{ range .Tracks }}{{ .Name | upper }};{{ end }}`
	if err := os.WriteFile(filepath.Join(dir, RootTemplate), []byte(root), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := NewFromTemplates(dir)
	if err != nil {
		t.Fatalf("NewFromTemplates failed: %v", err)
	}

	if got := convert(t, c, testSession()); got != "VOCALS & PADS;GUITAR;" {
		t.Errorf("output = %q", got)
	}
}

func TestNewFromTemplates_Errors(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		if _, err := NewFromTemplates(t.TempDir()); err == nil {
			t.Error("expected error for directory without templates")
		}
	})

	t.Run("missing root", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "AudioTrack.xml"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewFromTemplates(dir); err == nil {
			t.Error("expected error for directory without " + RootTemplate)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, RootTemplate), []byte("{{ .Missing }}"), 0o644); err != nil {
			t.Fatal(err)
		}
		c, err := NewFromTemplates(dir)
		if err != nil {
			t.Fatal(err)
		}
		if err := c.Convert(io.Discard, testSession()); err == nil {
			t.Error("expected template execution error")
		}
	})
}

func TestStereoToMono(t *testing.T) {
	tests := []struct {
		name        string
		left, right float64
		volume, pan float64
	}{
		{"centre", 1, 1, 1, 0},
		{"hard right", 0, 1, 0.5, 2},
		{"hard left", 1, 0, 0.5, -2},
		{"leaning left", 1, 0.5, 0.75, -2.0 / 3.0},
		{"silent", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volume, pan := stereoToMono(tt.left, tt.right)
			if volume != tt.volume || math.Abs(pan-tt.pan) > 1e-12 {
				t.Errorf("stereoToMono(%v, %v) = %v, %v; want %v, %v",
					tt.left, tt.right, volume, pan, tt.volume, tt.pan)
			}
		})
	}
}

func TestSplitDir(t *testing.T) {
	tests := []struct {
		dir  string
		want []string
	}{
		{"", nil},
		{".", nil},
		{"Samples", []string{"Samples"}},
		{`Samples\Takes\`, []string{"Samples", "Takes"}},
		{"/abs//path/", []string{"abs", "path"}},
	}

	for _, tt := range tests {
		got := splitDir(tt.dir)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("splitDir(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}
