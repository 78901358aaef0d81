package types

// Encoded sizes of the fixed-layout records. Fields are packed, no padding.
const (
	HeaderRecordSize = 344
	TempoRecordSize  = 32
	TrackRecordSize  = 96
	BlockRecordSize  = 88

	// WaveRecordFixedSize is the part of a wave reference that does not
	// depend on the filename: id, marker and two trailing fields.
	WaveRecordFixedSize = 16

	HeaderFilenameSize = 256
	HeaderTrailingSize = 44
	TrackTitleSize     = 36
	TrackTrailingSize  = 40
)

// WaveMarker is the value the second field of a wave reference normally holds.
const WaveMarker = 19

// HeaderRecord is the raw "hdr " payload.
type HeaderRecord struct {
	SampleRate               uint32
	SamplesInSession         uint32
	WaveBlockCount           uint32
	BitsPerSample            uint16
	Channels                 uint16
	MasterVolumeLeft         float64
	MasterVolumeRight        float64
	TimeOffsetSamples        uint32
	SaveAssociatedSeparately uint32
	Private                  uint32
	Filename                 [HeaderFilenameSize]byte
	Trailing                 [HeaderTrailingSize]byte
}

// TempoRecord is the raw "tmpo" payload.
type TempoRecord struct {
	BeatsPerMinute float64
	BeatsPerBar    uint32
	TicksPerBeat   uint32
	BeatOffsetMs   float64
	Unknown        uint64
}

// TrackRecord is one entry of the "trks" payload.
type TrackRecord struct {
	LeftVolume  float64
	RightVolume float64
	Flags       uint32
	Title       [TrackTitleSize]byte
	Trailing    [TrackTrailingSize]byte
}

// TrackFlagMute is bit 0 of TrackRecord.Flags.
const TrackFlagMute = 1 << 0

// BlockRecord is one entry of the "blk " payload.
type BlockRecord struct {
	LeftVolume        float64
	RightVolume       float64
	Unused1           float64
	Unused2           float64
	OffsetSamples     uint32
	SizeSamples       uint32
	ID                uint32
	Flags             uint32
	WaveID            uint32
	TrackID           uint32
	ParentGroup       uint32
	Unused            uint32
	WaveOffsetSamples uint32
	PunchGeneration   uint32
	PreviousPunch     uint32
	NextPunch         uint32
	OriginalIndex     uint32
	Unknown           uint32
}

// WaveRecord is the raw "wav " payload. Filename holds the raw bytes of the
// variable-length field, terminator included.
type WaveRecord struct {
	ID       uint32
	Marker   uint32
	Filename []byte
	Trailing [2]uint32
}
