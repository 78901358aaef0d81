package als

import (
	"path"
	"strings"

	"github.com/simonhull/sessionfile/internal/types"
)

// Fixed values expected by the set template.
const (
	// FirstTrackID is the id of the first audio track. Lower ids are taken by
	// the master and return tracks of the template.
	FirstTrackID = 8

	// TimeSignatureBase is added to the beats per bar to form Live's time
	// signature enum for an n/4 signature.
	TimeSignatureBase = 197

	ClipColorIndex = 20

	// Warp markers are pinned to a wide span; Live recomputes them when the
	// clip is warped.
	WarpStart = 0
	WarpEnd   = 10000
)

// Set is the data handed to RootTemplate.
type Set struct {
	Tempo         float64
	TimeSignature uint32
	Tracks        []Track
	NextID        int
}

// Track is one audio track of a Set.
type Track struct {
	ID     int
	Name   string
	Volume float64
	Pan    float64
	Mute   bool
	Clips  []Clip
}

// Clip is one arrangement clip. All positions are in beats.
type Clip struct {
	ID                int
	Time              float64
	CurrentStart      float64
	CurrentEnd        float64
	LoopStart         float64
	LoopEnd           float64
	WarpStartSecTime  float64
	WarpStartBeatTime float64
	WarpEndSecTime    float64
	WarpEndBeatTime   float64
	Name              string
	ColorIndex        int
	SampleFileName    string
	RelativePath      []string
}

func (c *Converter) buildSet(s *types.Session) (*Set, error) {
	if s.SampleRate == 0 && len(s.Blocks) > 0 {
		return nil, ErrNoSampleRate
	}

	set := &Set{
		Tempo:         s.Tempo.BeatsPerMinute,
		TimeSignature: TimeSignatureBase + s.Tempo.BeatsPerBar,
		Tracks:        make([]Track, 0, len(s.Tracks)),
	}

	clipID := 0
	for i, t := range s.Tracks {
		volume, pan := stereoToMono(t.LeftVolume, t.RightVolume)
		track := Track{
			ID:     FirstTrackID + i,
			Name:   t.Title,
			Volume: volume,
			Pan:    pan,
			Mute:   t.Mute,
			Clips:  []Clip{},
		}
		c.log.Debug("track", "id", track.ID, "title", t.Title, "volume", volume, "pan", pan)

		for _, b := range s.BlocksOnTrack(uint32(i + 1)) {
			clip, err := c.buildClip(s, b)
			if err != nil {
				return nil, err
			}
			clip.ID = clipID
			clipID++
			track.Clips = append(track.Clips, clip)
		}

		set.Tracks = append(set.Tracks, track)
		set.NextID = track.ID
	}

	if len(s.Blocks) > 0 {
		c.log.Debug("placed clips", "placed", clipID, "blocks", len(s.Blocks))
	}
	return set, nil
}

func (c *Converter) buildClip(s *types.Session, b types.Block) (Clip, error) {
	wave, ok := s.Wave(b.WaveID)
	if !ok {
		return Clip{}, &UnknownWaveError{BlockID: b.ID, WaveID: b.WaveID}
	}

	bpm := s.Tempo.BeatsPerMinute
	start := secondsToBeats(samplesToSeconds(b.OffsetSamples, s.SampleRate), bpm)
	duration := secondsToBeats(samplesToSeconds(b.SizeSamples, s.SampleRate), bpm)
	loopStart := secondsToBeats(samplesToSeconds(b.WaveOffsetSamples, s.SampleRate), bpm)
	name := wave.BaseName()

	c.log.Debug("clip", "block", b.ID, "wave", name, "start", start, "duration", duration)

	return Clip{
		Time:              start,
		CurrentStart:      start,
		CurrentEnd:        start + duration,
		LoopStart:         loopStart,
		LoopEnd:           loopStart + duration,
		WarpStartSecTime:  WarpStart,
		WarpStartBeatTime: WarpStart,
		WarpEndSecTime:    WarpEnd,
		WarpEndBeatTime:   WarpEnd,
		Name:              name,
		ColorIndex:        ClipColorIndex,
		SampleFileName:    name,
		RelativePath:      c.relativePath(),
	}, nil
}

func (c *Converter) relativePath() []string {
	if c.SampleDir == nil {
		return []string{}
	}
	return c.SampleDir
}

func splitDir(dir string) []string {
	dir = path.Clean(strings.ReplaceAll(dir, `\`, "/"))
	if dir == "." || dir == "/" {
		return nil
	}

	var elems []string
	for _, e := range strings.Split(strings.Trim(dir, "/"), "/") {
		if e != "" {
			elems = append(elems, e)
		}
	}
	return elems
}
