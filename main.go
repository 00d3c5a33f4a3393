package main

import (
	"flag"
	"log"

	"github.com/SSPYR0/C-Synth/synth"
	"github.com/gordonklaus/portaudio"
)

func main() {
	var (
		songFile = flag.String("song", "", "yaml song file; empty for the built-in demo loop")
		bpm      = flag.Float64("bpm", 0, "override the song tempo")
		render   = flag.String("render", "", "render the song to a wav file instead of playing live")
		seconds  = flag.Float64("seconds", 8, "duration of the rendered wav")
		gain     = flag.Float64("gain", 0.2, "master gain")
	)
	flag.Parse()

	s := defaultSong
	if *songFile != "" {
		var err error
		if s, err = loadSong(*songFile); err != nil {
			log.Fatal(err)
		}
	}
	if *bpm > 0 {
		s.Tempo = *bpm
	}

	instruments := make(map[string]*synth.Instrument)
	for _, ins := range synth.Instruments() {
		instruments[ins.Name()] = ins
	}

	seq, err := s.sequencer(instruments)
	if err != nil {
		log.Fatal(err)
	}
	m := newMachine(seq, *gain)

	if *render != "" {
		if err := renderWAV(m, *render, *seconds); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := portaudio.Initialize(); err != nil {
		log.Fatal(err)
	}
	defer portaudio.Terminate()

	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, bufferSize, m.process)
	if err != nil {
		log.Fatal(err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		log.Fatal(err)
	}

	if err := repl(&env{machine: m, instruments: instruments, song: s}); err != nil {
		log.Fatal(err)
	}
}
