package main

import (
	"fmt"
	"os"

	"github.com/SSPYR0/C-Synth/synth"
	"gopkg.in/yaml.v3"
)

// song is the yaml description of a sequenced loop: the beat grid plus one
// pattern per instrument channel.
type song struct {
	Tempo    float64       `yaml:"tempo"`
	Beats    int           `yaml:"beats"`
	SubBeats int           `yaml:"subbeats"`
	Channels []songChannel `yaml:"channels"`
}

type songChannel struct {
	Instrument string `yaml:"instrument"`
	Pattern    string `yaml:"pattern"`
}

var defaultSong = song{
	Tempo:    120,
	Beats:    4,
	SubBeats: 4,
	Channels: []songChannel{
		{Instrument: "kick", Pattern: "X...X...X..X.X.."},
		{Instrument: "snare", Pattern: "....X.......X..."},
		{Instrument: "hihat", Pattern: "X.X.X.X.X.X.X.XX"},
	},
}

func loadSong(path string) (song, error) {
	var s song
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse song %s: %w", path, err)
	}
	return s, nil
}

func (s song) validate() error {
	if s.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", s.Tempo)
	}
	if s.Beats <= 0 || s.SubBeats <= 0 {
		return fmt.Errorf("beat grid must be positive, got %dx%d", s.Beats, s.SubBeats)
	}
	return nil
}

// sequencer builds a sequencer from the song, resolving instrument names
// against the given set. Pattern problems surface here, before playback.
func (s song) sequencer(instruments map[string]*synth.Instrument) (*synth.Sequencer, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	seq := synth.NewSequencer(s.Tempo, s.Beats, s.SubBeats)
	for _, c := range s.Channels {
		ins, ok := instruments[c.Instrument]
		if !ok {
			return nil, fmt.Errorf("unknown instrument: %s", c.Instrument)
		}
		if err := seq.AddChannel(ins, c.Pattern); err != nil {
			return nil, fmt.Errorf("channel %s: %w", c.Instrument, err)
		}
	}
	return seq, nil
}
