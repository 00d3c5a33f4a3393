package synth

// Envelope shapes the amplitude of a note over time. Implementations derive
// the note's phase from the two timestamps: while offTime is at or below
// onTime the note is still held, once it moves past onTime the note has been
// released.
type Envelope interface {
	Amplitude(t, onTime, offTime float64) float64
}

// ADSR is a linear attack-decay-sustain-release envelope. Zero-length
// segments are instantaneous transitions, not divisions by zero.
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
	Start   float64 // peak amplitude reached at the end of the attack
}

// amplitudeSnap is the floor below which the envelope output is forced to
// exactly zero. Instruments rely on this to detect a finished note.
const amplitudeSnap = 0.01

var _ Envelope = ADSR{}

func (e ADSR) Amplitude(t, onTime, offTime float64) float64 {
	var amplitude float64

	if onTime >= offTime {
		amplitude = e.held(t - onTime)
	} else {
		// The note was released at offTime with whatever amplitude the
		// attack/decay curve had reached by then; ramp that down to zero
		// over the release time.
		release := e.held(offTime - onTime)
		if e.Release > 0 {
			amplitude = ((t-offTime)/e.Release)*(0.0-release) + release
		}
	}

	if amplitude <= amplitudeSnap {
		return 0.0
	}
	return amplitude
}

// held evaluates the attack/decay/sustain portion at the given note lifetime.
func (e ADSR) held(lifetime float64) float64 {
	switch {
	case lifetime <= e.Attack:
		if e.Attack <= 0 {
			return 0.0
		}
		return (lifetime / e.Attack) * e.Start
	case lifetime <= e.Attack+e.Decay:
		return ((lifetime-e.Attack)/e.Decay)*(e.Sustain-e.Start) + e.Start
	default:
		return e.Sustain
	}
}
