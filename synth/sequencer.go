package synth

import (
	"fmt"
	"strings"
)

// TriggerMarker marks a step in a channel pattern that fires the channel's
// instrument; any other pattern character is a rest.
const TriggerMarker = 'X'
const RestMarker = '.'

// triggerNoteID is the placeholder note id stamped on sequenced notes. The
// drum instruments shift it down far enough that the exact pitch hardly
// matters.
const triggerNoteID = 64

// Channel pairs an instrument with a trigger pattern of one character per
// step.
type Channel struct {
	Instrument *Instrument
	Pattern    string
}

// Sequencer advances a circular step index over a fixed beat grid and
// reports which channels fire on each step. It never owns the notes it
// describes; the caller stamps their on-times and tracks their lifetime.
type Sequencer struct {
	beats    int
	subBeats int
	tempo    float64

	stepDur float64 // seconds per sub-beat step
	total   int

	accumulated float64
	step        int

	channels []Channel

	// Triggered holds the notes fired by the most recent Update call. It is
	// rebuilt on every call, not accumulated.
	Triggered []Note
}

func NewSequencer(tempo float64, beats, subBeats int) *Sequencer {
	return &Sequencer{
		beats:    beats,
		subBeats: subBeats,
		tempo:    tempo,
		stepDur:  (60.0 / tempo) / float64(subBeats),
		total:    beats * subBeats,
	}
}

// AddChannel registers an instrument with its trigger pattern. The pattern
// must cover every step of the grid exactly; a mismatch is a configuration
// error, caught here rather than during playback.
func (s *Sequencer) AddChannel(ins *Instrument, pattern string) error {
	if len(pattern) != s.total {
		return fmt.Errorf("pattern %q is %d steps, grid has %d", pattern, len(pattern), s.total)
	}
	if i := strings.IndexFunc(pattern, func(r rune) bool {
		return r != TriggerMarker && r != RestMarker
	}); i >= 0 {
		return fmt.Errorf("pattern %q: invalid step character %q", pattern, pattern[i])
	}
	s.channels = append(s.channels, Channel{Instrument: ins, Pattern: pattern})
	return nil
}

// Update advances the sequencer by elapsed seconds and returns the number of
// notes triggered within that window. Multiple steps are drained in one call
// when the caller ticks coarsely, so timing stays correct at any buffer size.
func (s *Sequencer) Update(elapsed float64) int {
	s.Triggered = s.Triggered[:0]

	s.accumulated += elapsed
	for s.accumulated >= s.stepDur {
		s.accumulated -= s.stepDur

		for _, c := range s.channels {
			if c.Pattern[s.step] != TriggerMarker {
				continue
			}
			s.Triggered = append(s.Triggered, Note{
				ID:         triggerNoteID,
				Active:     true,
				Instrument: c.Instrument,
			})
		}

		s.step++
		if s.step >= s.total {
			s.step = 0
		}
	}

	return len(s.Triggered)
}

// Step reports the current position on the grid.
func (s *Sequencer) Step() int { return s.step }

// Tempo reports the configured tempo in beats per minute.
func (s *Sequencer) Tempo() float64 { return s.tempo }

// SetTempo changes the tempo, keeping the current grid position.
func (s *Sequencer) SetTempo(tempo float64) {
	s.tempo = tempo
	s.stepDur = (60.0 / tempo) / float64(s.subBeats)
}

// Channels returns the registered channels in registration order.
func (s *Sequencer) Channels() []Channel { return s.channels }

// SetPattern replaces the pattern of an already registered channel.
func (s *Sequencer) SetPattern(channel int, pattern string) error {
	if channel < 0 || channel >= len(s.channels) {
		return fmt.Errorf("no channel %d", channel)
	}
	if len(pattern) != s.total {
		return fmt.Errorf("pattern %q is %d steps, grid has %d", pattern, len(pattern), s.total)
	}
	s.channels[channel].Pattern = pattern
	return nil
}
