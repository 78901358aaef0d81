package ses

import (
	"github.com/simonhull/sessionfile/internal/types"
)

// The apply* functions map raw records onto the session model.

func (d *decoder) applyHeader(h types.HeaderRecord) error {
	filename, err := cleanString(d.text, h.Filename[:])
	if err != nil {
		return err
	}
	d.session.SampleRate = h.SampleRate
	d.session.MasterVolumeLeft = h.MasterVolumeLeft
	d.session.MasterVolumeRight = h.MasterVolumeRight
	d.session.Filename = filename
	return nil
}

func (d *decoder) applyTempo(t types.TempoRecord) {
	d.session.Tempo = types.Tempo{
		BeatsPerMinute: t.BeatsPerMinute,
		BeatsPerBar:    t.BeatsPerBar,
		TicksPerBeat:   t.TicksPerBeat,
	}
}

func (d *decoder) appendTrack(t types.TrackRecord) error {
	title, err := cleanString(d.text, t.Title[:])
	if err != nil {
		return err
	}
	d.session.Tracks = append(d.session.Tracks, types.Track{
		LeftVolume:  t.LeftVolume,
		RightVolume: t.RightVolume,
		Title:       title,
		Mute:        t.Flags&types.TrackFlagMute != 0,
	})
	return nil
}

func (d *decoder) appendWave(w types.WaveRecord) error {
	filename, err := cleanString(d.text, w.Filename)
	if err != nil {
		return err
	}
	d.session.Waves = append(d.session.Waves, types.Wave{
		ID:       w.ID,
		Filename: filename,
	})
	return nil
}

func (d *decoder) appendBlock(b types.BlockRecord) {
	d.session.Blocks = append(d.session.Blocks, types.Block{
		ID:                b.ID,
		LeftVolume:        b.LeftVolume,
		RightVolume:       b.RightVolume,
		OffsetSamples:     b.OffsetSamples,
		SizeSamples:       b.SizeSamples,
		WaveOffsetSamples: b.WaveOffsetSamples,
		WaveID:            b.WaveID,
		TrackID:           b.TrackID,
	})
}
