package synth

import "math"

// Tuning identifies a tuning system for FreqIn. Only equal temperament is
// implemented; unknown values fall back to it rather than erroring.
type Tuning int

const TuningEqual Tuning = 0

// baseFreq is the frequency of note 0. It is a calibration constant carried
// over from the instrument tables, which compensate with large note offsets.
const baseFreq = 8.0

var semitone = math.Pow(2.0, 1.0/12.0)

// Freq converts a note id to a frequency in Hz using the default tuning.
// Note ids are semitone offsets, so Freq(n+12) == 2*Freq(n).
func Freq(note int) float64 {
	return FreqIn(TuningEqual, note)
}

func FreqIn(tuning Tuning, note int) float64 {
	switch tuning {
	case TuningEqual:
		fallthrough
	default:
		return baseFreq * math.Pow(semitone, float64(note))
	}
}
