package synth

import "math/rand"

// partial is one oscillator term in an instrument's additive mix.
type partial struct {
	weight float64
	offset int // semitone offset from the note id
	osc    Osc

	// reversed partials run their oscillator backwards in time from the
	// note start, which gives an attack transient distinct from the
	// sustained portion.
	reversed bool
}

// Instrument turns a note and a point in time into a sample value. An
// instrument holds no per-note state: everything that varies per note lives
// in the Note itself, so one instrument serves every note that references it.
type Instrument struct {
	name    string
	volume  float64
	env     ADSR
	maxLife float64 // seconds; <= 0 means unbounded

	// percussive instruments never receive a release, so they finish on a
	// timeout instead of waiting for the envelope to reach zero.
	percussive bool

	partials []partial
	rnd      *rand.Rand
}

func (ins *Instrument) Name() string { return ins.name }

// Seed makes the instrument's noise output reproducible.
func (ins *Instrument) Seed(seed int64) {
	ins.rnd.Seed(seed)
}

// Sound returns the instrument's sample value for note n at time t, and
// whether the note is finished and can be retired by the caller.
func (ins *Instrument) Sound(t float64, n *Note) (float64, bool) {
	amplitude := ins.env.Amplitude(t, n.On, n.Off)

	var finished bool
	if ins.percussive {
		finished = ins.maxLife > 0 && t-n.On >= ins.maxLife
	} else {
		finished = amplitude <= 0.0
	}

	var signal float64
	for _, p := range ins.partials {
		pt := t - n.On
		if p.reversed {
			pt = n.On - t
		}
		signal += p.weight * p.osc.Sample(pt, Freq(n.ID+p.offset))
	}

	return amplitude * signal * ins.volume, finished
}

func newInstrument(ins Instrument) *Instrument {
	ins.rnd = rand.New(rand.NewSource(rand.Int63()))
	for i := range ins.partials {
		if ins.partials[i].osc.Wave == Noise {
			ins.partials[i].osc.Rand = ins.rnd
		}
	}
	return &ins
}

// Bell is three sine partials an octave apart with a long decay and no
// sustain, released note or not, it rings out on its own.
func Bell() *Instrument {
	return newInstrument(Instrument{
		name:    "bell",
		volume:  1.0,
		env:     ADSR{Attack: 0.01, Decay: 1.0, Sustain: 0.0, Release: 1.0, Start: 1.0},
		maxLife: 3.0,
		partials: []partial{
			{1.00, 12, Osc{Wave: Sine, LFO: LFO{Hertz: 5.0, Amp: 0.001}}, false},
			{0.50, 24, Osc{Wave: Sine}, false},
			{0.25, 36, Osc{Wave: Sine}, false},
		},
	})
}

// Bell8 swaps the bell's fundamental for a square wave.
func Bell8() *Instrument {
	return newInstrument(Instrument{
		name:    "bell8",
		volume:  1.0,
		env:     ADSR{Attack: 0.01, Decay: 0.5, Sustain: 0.8, Release: 1.0, Start: 1.0},
		maxLife: 3.0,
		partials: []partial{
			{1.00, 0, Osc{Wave: Square, LFO: LFO{Hertz: 5.0, Amp: 0.001}}, false},
			{0.50, 12, Osc{Wave: Sine}, false},
			{0.25, 24, Osc{Wave: Sine}, false},
		},
	})
}

// Harmonica layers squares over a time-reversed analog saw plus a touch of
// noise. It sustains until released.
func Harmonica() *Instrument {
	return newInstrument(Instrument{
		name:    "harmonica",
		volume:  0.3,
		env:     ADSR{Attack: 0.0, Decay: 1.0, Sustain: 0.95, Release: 0.1, Start: 1.0},
		maxLife: -1.0,
		partials: []partial{
			{1.00, -12, Osc{Wave: SawAnalog, LFO: LFO{Hertz: 5.0, Amp: 0.001}, Shape: 100}, true},
			{1.00, 0, Osc{Wave: Square, LFO: LFO{Hertz: 5.0, Amp: 0.001}}, false},
			{0.50, 12, Osc{Wave: Square}, false},
			{0.05, 24, Osc{Wave: Noise}, false},
		},
	})
}

func DrumKick() *Instrument {
	return newInstrument(Instrument{
		name:       "kick",
		volume:     1.0,
		env:        ADSR{Attack: 0.01, Decay: 0.15, Sustain: 0.0, Release: 0.0, Start: 1.0},
		maxLife:    1.5,
		percussive: true,
		partials: []partial{
			{0.99, -36, Osc{Wave: Sine, LFO: LFO{Hertz: 1.0, Amp: 1.0}}, false},
			{0.01, 0, Osc{Wave: Noise}, false},
		},
	})
}

func DrumSnare() *Instrument {
	return newInstrument(Instrument{
		name:       "snare",
		volume:     1.0,
		env:        ADSR{Attack: 0.0, Decay: 0.2, Sustain: 0.0, Release: 0.0, Start: 1.0},
		maxLife:    1.0,
		percussive: true,
		partials: []partial{
			{0.5, -24, Osc{Wave: Sine, LFO: LFO{Hertz: 0.5, Amp: 1.0}}, false},
			{0.5, 0, Osc{Wave: Noise}, false},
		},
	})
}

func DrumHiHat() *Instrument {
	return newInstrument(Instrument{
		name:       "hihat",
		volume:     0.5,
		env:        ADSR{Attack: 0.01, Decay: 0.05, Sustain: 0.0, Release: 0.0, Start: 1.0},
		maxLife:    1.0,
		percussive: true,
		partials: []partial{
			{0.1, -12, Osc{Wave: Square, LFO: LFO{Hertz: 1.5, Amp: 1.0}}, false},
			{0.9, 0, Osc{Wave: Noise}, false},
		},
	})
}

// Instruments returns one of each instrument, in a stable order.
func Instruments() []*Instrument {
	return []*Instrument{Bell(), Bell8(), Harmonica(), DrumKick(), DrumSnare(), DrumHiHat()}
}
