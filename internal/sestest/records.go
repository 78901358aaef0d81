package sestest

import (
	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/types"
)

// NewHeader returns a header record with the given sample rate and filename
// and unit master volume.
func NewHeader(sampleRate uint32, filename string) types.HeaderRecord {
	h := types.HeaderRecord{
		SampleRate:        sampleRate,
		BitsPerSample:     16,
		Channels:          2,
		MasterVolumeLeft:  1,
		MasterVolumeRight: 1,
	}
	copy(h.Filename[:], filename)
	return h
}

// NewTrack returns a track record.
func NewTrack(title string, left, right float64, mute bool) types.TrackRecord {
	t := types.TrackRecord{
		LeftVolume:  left,
		RightVolume: right,
	}
	if mute {
		t.Flags |= types.TrackFlagMute
	}
	copy(t.Title[:], title)
	return t
}

// NewWave returns a wave reference with the usual marker and a
// zero-terminated filename.
func NewWave(id uint32, filename string) types.WaveRecord {
	return types.WaveRecord{
		ID:       id,
		Marker:   types.WaveMarker,
		Filename: append([]byte(filename), 0),
	}
}

// EncodeHeader encodes a "hdr " payload.
func EncodeHeader(h types.HeaderRecord) []byte {
	w := binary.NewWriter()
	binary.WriteLE(w, h.SampleRate)
	binary.WriteLE(w, h.SamplesInSession)
	binary.WriteLE(w, h.WaveBlockCount)
	binary.WriteLE(w, h.BitsPerSample)
	binary.WriteLE(w, h.Channels)
	w.WriteFloat64(h.MasterVolumeLeft)
	w.WriteFloat64(h.MasterVolumeRight)
	binary.WriteLE(w, h.TimeOffsetSamples)
	binary.WriteLE(w, h.SaveAssociatedSeparately)
	binary.WriteLE(w, h.Private)
	w.WriteBytes(h.Filename[:])
	w.WriteBytes(h.Trailing[:])
	return w.Bytes()
}

// EncodeTempo encodes a "tmpo" payload.
func EncodeTempo(t types.TempoRecord) []byte {
	w := binary.NewWriter()
	w.WriteFloat64(t.BeatsPerMinute)
	binary.WriteLE(w, t.BeatsPerBar)
	binary.WriteLE(w, t.TicksPerBeat)
	w.WriteFloat64(t.BeatOffsetMs)
	binary.WriteLE(w, t.Unknown)
	return w.Bytes()
}

// EncodeTrack encodes one track entry.
func EncodeTrack(t types.TrackRecord) []byte {
	w := binary.NewWriter()
	w.WriteFloat64(t.LeftVolume)
	w.WriteFloat64(t.RightVolume)
	binary.WriteLE(w, t.Flags)
	w.WriteBytes(t.Title[:])
	w.WriteBytes(t.Trailing[:])
	return w.Bytes()
}

// EncodeBlock encodes one block placement entry.
func EncodeBlock(b types.BlockRecord) []byte {
	w := binary.NewWriter()
	w.WriteFloat64(b.LeftVolume)
	w.WriteFloat64(b.RightVolume)
	w.WriteFloat64(b.Unused1)
	w.WriteFloat64(b.Unused2)
	for _, v := range []uint32{
		b.OffsetSamples, b.SizeSamples, b.ID, b.Flags, b.WaveID, b.TrackID,
		b.ParentGroup, b.Unused, b.WaveOffsetSamples, b.PunchGeneration,
		b.PreviousPunch, b.NextPunch, b.OriginalIndex, b.Unknown,
	} {
		binary.WriteLE(w, v)
	}
	return w.Bytes()
}

// EncodeWave encodes a "wav " payload.
func EncodeWave(wv types.WaveRecord) []byte {
	w := binary.NewWriter()
	binary.WriteLE(w, wv.ID)
	binary.WriteLE(w, wv.Marker)
	w.WriteBytes(wv.Filename)
	binary.WriteLE(w, wv.Trailing[0])
	binary.WriteLE(w, wv.Trailing[1])
	return w.Bytes()
}
