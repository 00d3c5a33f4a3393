package synth

import (
	"math"
	"math/rand"
)

// Wave selects the shape an oscillator produces.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	SawAnalog
	SawDigital
	Noise
)

// LFO describes the vibrato applied to an oscillator. Amp is relative to the
// carrier frequency, so the same setting produces the same perceived depth
// across the scale.
type LFO struct {
	Hertz float64
	Amp   float64
}

// defaultShape is the number of partials summed for SawAnalog when Osc.Shape
// is left zero. More partials get closer to an ideal sawtooth but cost a sine
// evaluation each.
const defaultShape = 50

var defaultRand = rand.New(rand.NewSource(1))

// Osc is a stateless oscillator configuration. Sample is a pure function of
// its arguments except for Noise, which draws from Rand.
type Osc struct {
	Wave  Wave
	LFO   LFO
	Shape float64
	Rand  *rand.Rand
}

// Sample returns the instantaneous signal value in [-1, 1] at time t for a
// carrier of the given frequency.
func (o Osc) Sample(t, hertz float64) float64 {
	phase := angular(hertz)*t + o.LFO.Amp*hertz*math.Sin(angular(o.LFO.Hertz)*t)

	switch o.Wave {
	case Sine:
		return math.Sin(phase)

	case Square:
		if math.Sin(phase) > 0 {
			return 1.0
		}
		return -1.0

	case Triangle:
		return math.Asin(math.Sin(phase)) * (2.0 / math.Pi)

	case SawAnalog:
		shape := o.Shape
		if shape == 0 {
			shape = defaultShape
		}
		var out float64
		for n := 1.0; n < shape; n++ {
			out += math.Sin(n*phase) / n
		}
		return out * (2.0 / math.Pi)

	case SawDigital:
		// Closed-form ramp. Derived from time and frequency directly, so
		// vibrato has no effect on this shape.
		return (2.0 / math.Pi) * (hertz*math.Pi*math.Mod(t, 1.0/hertz) - (math.Pi / 2.0))

	case Noise:
		rnd := o.Rand
		if rnd == nil {
			rnd = defaultRand
		}
		return 2.0*rnd.Float64() - 1.0

	default:
		return 0.0
	}
}

// Oscillate samples a plain oscillator of the given wave, without vibrato.
func Oscillate(t, hertz float64, w Wave) float64 {
	return Osc{Wave: w}.Sample(t, hertz)
}

// angular converts a frequency in Hz to angular velocity.
func angular(hertz float64) float64 {
	return hertz * 2.0 * math.Pi
}
