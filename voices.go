package main

import (
	"sync"

	"github.com/SSPYR0/C-Synth/synth"
)

const (
	sampleRate = 44100
	bufferSize = 512
)

// machine owns the set of active notes and the playback clock. The audio
// callback drives it sample by sample; the REPL mutates it under the same
// lock from its own goroutine.
type machine struct {
	mu      sync.Mutex
	seq     *synth.Sequencer
	notes   []*synth.Note
	time    float64
	gain    float64
	playing bool
}

func newMachine(seq *synth.Sequencer, gain float64) *machine {
	return &machine{seq: seq, gain: gain, playing: true}
}

// process fills a stereo output buffer. One sample of wall time passes per
// frame, so sequencer steps and note on-times land on exact sample
// boundaries regardless of the buffer size.
func (m *machine) process(out [][]float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	const dt = 1.0 / sampleRate
	for i := range out[0] {
		m.time += dt

		if m.playing && m.seq.Update(dt) > 0 {
			for _, n := range m.seq.Triggered {
				n := n
				n.On = m.time
				m.notes = append(m.notes, &n)
			}
		}

		v := float32(m.gain * m.mix())
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[0][i] = v
		out[1][i] = v
	}
}

// mix sums every active note and drops the ones their instruments report
// finished. Callers must hold the lock.
func (m *machine) mix() float64 {
	var sum float64
	kept := m.notes[:0]
	for _, n := range m.notes {
		v, finished := n.Instrument.Sound(m.time, n)
		sum += v
		if finished {
			n.Active = false
			continue
		}
		kept = append(kept, n)
	}
	// keep the backing array from pinning retired notes
	for i := len(kept); i < len(m.notes); i++ {
		m.notes[i] = nil
	}
	m.notes = kept
	return sum
}

// noteOn starts a note on the given instrument at the current playback time.
func (m *machine) noteOn(ins *synth.Instrument, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, &synth.Note{
		ID:         id,
		On:         m.time,
		Active:     true,
		Instrument: ins,
	})
}

// noteOff releases every held note with the given id. Notes already
// releasing are left alone so a second release can't restart their ramp.
func (m *machine) noteOff(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notes {
		if n.ID == id && n.Off <= n.On {
			n.Off = m.time
		}
	}
}

// releaseAll releases every held note, whatever its id.
func (m *machine) releaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notes {
		if n.Off <= n.On {
			n.Off = m.time
		}
	}
}

func (m *machine) setPlaying(playing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = playing
}

func (m *machine) update(f func(*synth.Sequencer)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f(m.seq)
}
