package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SSPYR0/C-Synth/synth"
	"github.com/chzyer/readline"
)

type env struct {
	machine     *machine
	instruments map[string]*synth.Instrument
	song        song
}

func (e *env) instrument(name string) (*synth.Instrument, error) {
	ins, ok := e.instruments[name]
	if !ok {
		return nil, fmt.Errorf("unknown instrument: %s", name)
	}
	return ins, nil
}

func (e *env) eval(input string) (string, error) {
	args := strings.Fields(input)
	name := args[0]
	args = args[1:]
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity < 0 {
			arity := -cmd.arity
			if len(args) < arity {
				return "", fmt.Errorf("%s: wrong number of arguments: need at least %v, got %v",
					cmd.name, arity, len(args))
			}
		} else if len(args) != cmd.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(args))
		}
		result, err := cmd.run(e, args)
		if err != nil {
			return result, fmt.Errorf("%s: %w", cmd.name, err)
		}
		return result, nil
	}
	return "", fmt.Errorf("unknown command: %s", name)
}

func repl(env *env) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		if result, err := env.eval(line); err != nil {
			fmt.Println(err)
		} else if result != "" {
			fmt.Println(result)
		}
	}
}

type command struct {
	name  string
	run   func(*env, []string) (string, error)
	arity int // -n means len(args) must be >= n
}

var commands = []command{
	{"play", playCommand, 2},
	{"off", offCommand, 1},
	{"silence", silenceCommand, 0},
	{"bpm", bpmCommand, 1},
	{"pattern", patternCommand, 2},
	{"start", startCommand, 0},
	{"stop", stopCommand, 0},
	{"instruments", instrumentsCommand, 0},
	{"channels", channelsCommand, 0},
	{"render", renderCommand, 2},
}

// playCommand starts a note: play <instrument> <note-id>. The note sustains
// until released with off.
func playCommand(e *env, args []string) (string, error) {
	ins, err := e.instrument(args[0])
	if err != nil {
		return "", err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return "", fmt.Errorf("note id %q is not an integer", args[1])
	}
	e.machine.noteOn(ins, id)
	return "", nil
}

// offCommand releases held notes with the given id: off <note-id>.
func offCommand(e *env, args []string) (string, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("note id %q is not an integer", args[0])
	}
	e.machine.noteOff(id)
	return "", nil
}

// silenceCommand releases every held note.
func silenceCommand(e *env, args []string) (string, error) {
	e.machine.releaseAll()
	return "", nil
}

func bpmCommand(e *env, args []string) (string, error) {
	tempo, err := strconv.ParseFloat(args[0], 64)
	if err != nil || tempo <= 0 {
		return "", fmt.Errorf("tempo must be a positive number, got %q", args[0])
	}
	e.machine.update(func(seq *synth.Sequencer) {
		seq.SetTempo(tempo)
	})
	return "", nil
}

// patternCommand replaces a channel's pattern: pattern <channel> <steps>.
func patternCommand(e *env, args []string) (string, error) {
	channel, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("channel %q is not an integer", args[0])
	}
	var serr error
	e.machine.update(func(seq *synth.Sequencer) {
		serr = seq.SetPattern(channel, args[1])
	})
	return "", serr
}

func startCommand(e *env, args []string) (string, error) {
	e.machine.setPlaying(true)
	return "", nil
}

func stopCommand(e *env, args []string) (string, error) {
	e.machine.setPlaying(false)
	return "", nil
}

func instrumentsCommand(e *env, args []string) (string, error) {
	var names []string
	for _, ins := range synth.Instruments() {
		names = append(names, ins.Name())
	}
	return strings.Join(names, " "), nil
}

func channelsCommand(e *env, args []string) (string, error) {
	var b strings.Builder
	e.machine.update(func(seq *synth.Sequencer) {
		for i, c := range seq.Channels() {
			fmt.Fprintf(&b, "%d %-10s %s\n", i, c.Instrument.Name(), c.Pattern)
		}
	})
	return strings.TrimRight(b.String(), "\n"), nil
}

// renderCommand writes the current song offline: render <file> <seconds>.
// It builds a fresh machine so the live stream keeps playing undisturbed.
func renderCommand(e *env, args []string) (string, error) {
	seconds, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", fmt.Errorf("duration %q is not a number", args[1])
	}
	seq, err := e.song.sequencer(e.instruments)
	if err != nil {
		return "", err
	}
	if err := renderWAV(newMachine(seq, e.machine.gain), args[0], seconds); err != nil {
		return "", err
	}
	return fmt.Sprintf("wrote %s", args[0]), nil
}
