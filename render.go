package main

import (
	"fmt"
	"os"

	wav "github.com/youpy/go-wav"
)

// renderWAV runs a machine offline for the given duration and writes the
// output as 16-bit stereo PCM. The machine must not be driven by an audio
// stream at the same time.
func renderWAV(m *machine, path string, seconds float64) error {
	if seconds <= 0 {
		return fmt.Errorf("render duration must be positive, got %v", seconds)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	frames := int(seconds * sampleRate)
	w := wav.NewWriter(f, uint32(frames), 2, sampleRate, 16)

	buf := [][]float32{
		make([]float32, bufferSize),
		make([]float32, bufferSize),
	}
	samples := make([]wav.Sample, bufferSize)

	const scale = 1<<15 - 1

	for frames > 0 {
		n := bufferSize
		if frames < n {
			n = frames
			buf[0] = buf[0][:n]
			buf[1] = buf[1][:n]
		}
		m.process(buf)
		for i := 0; i < n; i++ {
			samples[i].Values[0] = int(buf[0][i] * scale)
			samples[i].Values[1] = int(buf[1][i] * scale)
		}
		if err := w.WriteSamples(samples[:n]); err != nil {
			return err
		}
		frames -= n
	}
	return nil
}
