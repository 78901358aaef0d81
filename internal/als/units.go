package als

import "math"

func samplesToSeconds(samples, sampleRate uint32) float64 {
	return float64(samples) / float64(sampleRate)
}

func secondsToBeats(seconds, bpm float64) float64 {
	return seconds * (bpm / 60.0)
}

// stereoToMono folds a left/right gain pair into a single volume and a pan
// position. Pan is relative to the mean gain, so a source with one side
// silent pans to -2 (left) or +2 (right).
func stereoToMono(left, right float64) (volume, pan float64) {
	volume = (left + right) / 2.0
	pan = (right - left) / math.Max(volume, epsilon)
	return volume, pan
}

// epsilon is the difference between 1.0 and the next representable float64.
const epsilon = 0x1p-52
