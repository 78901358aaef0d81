// Package types holds the session model, the raw record shapes and the
// error taxonomy shared by the decoder packages.
package types

import (
	"fmt"
	"strings"
)

// Session is a fully decoded project.
//
// Tracks are stored in file order; Tracks[i] is the track that blocks refer
// to with TrackID i+1.
type Session struct {
	SampleRate        uint32  `json:"sample_rate" yaml:"sample_rate"`
	MasterVolumeLeft  float64 `json:"master_volume_left" yaml:"master_volume_left"`
	MasterVolumeRight float64 `json:"master_volume_right" yaml:"master_volume_right"`
	Filename          string  `json:"filename" yaml:"filename"`
	Tempo             Tempo   `json:"tempo" yaml:"tempo"`
	Tracks            []Track `json:"tracks" yaml:"tracks"`
	Waves             []Wave  `json:"waves" yaml:"waves"`
	Blocks            []Block `json:"blocks" yaml:"blocks"`
}

// Tempo describes the session's musical grid.
type Tempo struct {
	BeatsPerMinute float64 `json:"beats_per_minute" yaml:"beats_per_minute"`
	BeatsPerBar    uint32  `json:"beats_per_bar" yaml:"beats_per_bar"`
	TicksPerBeat   uint32  `json:"ticks_per_beat" yaml:"ticks_per_beat"`
}

// Track is one mixer track.
type Track struct {
	LeftVolume  float64 `json:"left_volume" yaml:"left_volume"`
	RightVolume float64 `json:"right_volume" yaml:"right_volume"`
	Title       string  `json:"title" yaml:"title"`
	Mute        bool    `json:"mute" yaml:"mute"`
}

// Wave references an external audio file.
type Wave struct {
	ID       uint32 `json:"id" yaml:"id"`
	Filename string `json:"filename" yaml:"filename"`
}

// BaseName returns the last element of Filename, accepting both '/' and '\'
// as separators regardless of the host OS.
func (w Wave) BaseName() string {
	i := strings.LastIndexAny(w.Filename, `/\`)
	return w.Filename[i+1:]
}

// Block places a region of a wave on a track's timeline.
type Block struct {
	ID                uint32  `json:"id" yaml:"id"`
	LeftVolume        float64 `json:"left_volume" yaml:"left_volume"`
	RightVolume       float64 `json:"right_volume" yaml:"right_volume"`
	OffsetSamples     uint32  `json:"offset_samples" yaml:"offset_samples"`
	SizeSamples       uint32  `json:"size_samples" yaml:"size_samples"`
	WaveOffsetSamples uint32  `json:"wave_offset_samples" yaml:"wave_offset_samples"`
	WaveID            uint32  `json:"wave_id" yaml:"wave_id"`
	TrackID           uint32  `json:"track_id" yaml:"track_id"`
}

// Wave returns the wave with the given id.
func (s *Session) Wave(id uint32) (Wave, bool) {
	for _, w := range s.Waves {
		if w.ID == id {
			return w, true
		}
	}
	return Wave{}, false
}

// Track returns the track with the given 1-based id.
func (s *Session) Track(id uint32) (Track, bool) {
	if id == 0 || int(id) > len(s.Tracks) {
		return Track{}, false
	}
	return s.Tracks[id-1], true
}

// BlocksOnTrack returns the blocks placed on the track with the given 1-based
// id, in file order.
func (s *Session) BlocksOnTrack(id uint32) []Block {
	var blocks []Block
	for _, b := range s.Blocks {
		if b.TrackID == id {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// String returns a one-line summary of the session.
func (s *Session) String() string {
	return fmt.Sprintf("%d Hz, %.2f BPM, %d beats/bar, %d ticks/beat, %d tracks, %d waves, %d blocks",
		s.SampleRate, s.Tempo.BeatsPerMinute, s.Tempo.BeatsPerBar, s.Tempo.TicksPerBeat,
		len(s.Tracks), len(s.Waves), len(s.Blocks))
}
