package als

import (
	"errors"
	"fmt"
)

// ErrNoSampleRate is returned when a session with blocks declares a zero
// sample rate, so block positions cannot be converted to time.
var ErrNoSampleRate = errors.New("session has no sample rate")

// UnknownWaveError is returned when a block references a wave id that the
// session does not contain.
type UnknownWaveError struct {
	BlockID uint32
	WaveID  uint32
}

func (e *UnknownWaveError) Error() string {
	return fmt.Sprintf("block %d references unknown wave %d", e.BlockID, e.WaveID)
}
