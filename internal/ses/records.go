package ses

import (
	"github.com/simonhull/sessionfile/internal/binary"
	"github.com/simonhull/sessionfile/internal/types"
)

// Fixed-layout records are read field by field in declared order. Any
// truncation fails the whole record.

func readHeaderRecord(c *binary.Cursor) (types.HeaderRecord, error) {
	var h types.HeaderRecord
	cr := binary.NewChainReader(c)

	h.SampleRate = binary.ReadChained[uint32](cr, "header sample rate")
	h.SamplesInSession = binary.ReadChained[uint32](cr, "header samples in session")
	h.WaveBlockCount = binary.ReadChained[uint32](cr, "header wave block count")
	h.BitsPerSample = binary.ReadChained[uint16](cr, "header bits per sample")
	h.Channels = binary.ReadChained[uint16](cr, "header channels")
	h.MasterVolumeLeft = cr.Float64("header master volume left")
	h.MasterVolumeRight = cr.Float64("header master volume right")
	h.TimeOffsetSamples = binary.ReadChained[uint32](cr, "header time offset")
	h.SaveAssociatedSeparately = binary.ReadChained[uint32](cr, "header save-associated flag")
	h.Private = binary.ReadChained[uint32](cr, "header private flag")
	cr.Bytes(h.Filename[:], "header filename")
	cr.Bytes(h.Trailing[:], "header trailing data")

	return h, cr.Error()
}

func readTempoRecord(c *binary.Cursor) (types.TempoRecord, error) {
	var t types.TempoRecord
	cr := binary.NewChainReader(c)

	t.BeatsPerMinute = cr.Float64("tempo beats per minute")
	t.BeatsPerBar = binary.ReadChained[uint32](cr, "tempo beats per bar")
	t.TicksPerBeat = binary.ReadChained[uint32](cr, "tempo ticks per beat")
	t.BeatOffsetMs = cr.Float64("tempo beat offset")
	t.Unknown = binary.ReadChained[uint64](cr, "tempo trailing data")

	return t, cr.Error()
}

func readTrackRecord(c *binary.Cursor) (types.TrackRecord, error) {
	var t types.TrackRecord
	cr := binary.NewChainReader(c)

	t.LeftVolume = cr.Float64("track left volume")
	t.RightVolume = cr.Float64("track right volume")
	t.Flags = binary.ReadChained[uint32](cr, "track flags")
	cr.Bytes(t.Title[:], "track title")
	cr.Bytes(t.Trailing[:], "track trailing data")

	return t, cr.Error()
}

func readBlockRecord(c *binary.Cursor) (types.BlockRecord, error) {
	var b types.BlockRecord
	cr := binary.NewChainReader(c)

	b.LeftVolume = cr.Float64("block left volume")
	b.RightVolume = cr.Float64("block right volume")
	b.Unused1 = cr.Float64("block unused 1")
	b.Unused2 = cr.Float64("block unused 2")
	b.OffsetSamples = binary.ReadChained[uint32](cr, "block offset")
	b.SizeSamples = binary.ReadChained[uint32](cr, "block size")
	b.ID = binary.ReadChained[uint32](cr, "block id")
	b.Flags = binary.ReadChained[uint32](cr, "block flags")
	b.WaveID = binary.ReadChained[uint32](cr, "block wave id")
	b.TrackID = binary.ReadChained[uint32](cr, "block track id")
	b.ParentGroup = binary.ReadChained[uint32](cr, "block parent group")
	b.Unused = binary.ReadChained[uint32](cr, "block unused")
	b.WaveOffsetSamples = binary.ReadChained[uint32](cr, "block wave offset")
	b.PunchGeneration = binary.ReadChained[uint32](cr, "block punch generation")
	b.PreviousPunch = binary.ReadChained[uint32](cr, "block previous punch")
	b.NextPunch = binary.ReadChained[uint32](cr, "block next punch")
	b.OriginalIndex = binary.ReadChained[uint32](cr, "block original index")
	b.Unknown = binary.ReadChained[uint32](cr, "block trailing data")

	return b, cr.Error()
}

// readWaveRecord decodes a wave reference whose filename length is derived
// from the enclosing chunk's declared length.
func readWaveRecord(c *binary.Cursor, length uint32) (types.WaveRecord, error) {
	var w types.WaveRecord
	if length < types.WaveRecordFixedSize {
		return w, &types.MalformedChunkError{
			Path:   c.Path(),
			Tag:    tagWave,
			Offset: c.Position(),
			Reason: "declared length is smaller than the fixed wave fields",
		}
	}

	cr := binary.NewChainReader(c)
	w.ID = binary.ReadChained[uint32](cr, "wave id")
	w.Marker = binary.ReadChained[uint32](cr, "wave marker")
	w.Filename = make([]byte, length-types.WaveRecordFixedSize)
	cr.Bytes(w.Filename, "wave filename")
	w.Trailing[0] = binary.ReadChained[uint32](cr, "wave trailing field")
	w.Trailing[1] = binary.ReadChained[uint32](cr, "wave trailing field")

	return w, cr.Error()
}
