package synth

import (
	"math"
	"math/rand"
	"testing"
)

func TestSinePeriodicAndBounded(t *testing.T) {
	const freq = 110.0
	o := Osc{Wave: Sine}
	for i := 0; i < 1000; i++ {
		tm := float64(i) / 4410.0
		v := o.Sample(tm, freq)
		if v < -1 || v > 1 {
			t.Fatalf("sine out of range at t=%v: %v", tm, v)
		}
		if next := o.Sample(tm+1/freq, freq); math.Abs(v-next) > 1e-6 {
			t.Fatalf("sine not periodic at t=%v: %v vs %v", tm, v, next)
		}
	}
}

func TestSquareIsBinary(t *testing.T) {
	o := Osc{Wave: Square}
	for i := 0; i < 1000; i++ {
		tm := float64(i) / 4410.0
		if v := o.Sample(tm, 220); v != 1.0 && v != -1.0 {
			t.Fatalf("square produced %v at t=%v", v, tm)
		}
	}
}

func TestTriangleBounded(t *testing.T) {
	o := Osc{Wave: Triangle}
	for i := 0; i < 1000; i++ {
		tm := float64(i) / 4410.0
		if v := o.Sample(tm, 220); v < -1 || v > 1 {
			t.Fatalf("triangle out of range at t=%v: %v", tm, v)
		}
	}
}

func TestVibratoShiftsPhase(t *testing.T) {
	plain := Osc{Wave: Sine}
	vibrato := Osc{Wave: Sine, LFO: LFO{Hertz: 5.0, Amp: 0.01}}
	var differs bool
	for i := 1; i < 1000; i++ {
		tm := float64(i) / 4410.0
		if plain.Sample(tm, 220) != vibrato.Sample(tm, 220) {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("vibrato had no effect on sine output")
	}
}

func TestDigitalSawIgnoresVibrato(t *testing.T) {
	plain := Osc{Wave: SawDigital}
	vibrato := Osc{Wave: SawDigital, LFO: LFO{Hertz: 5.0, Amp: 0.5}}
	for i := 0; i < 1000; i++ {
		tm := float64(i) / 4410.0
		if want, got := plain.Sample(tm, 220), vibrato.Sample(tm, 220); want != got {
			t.Fatalf("digital saw responded to vibrato at t=%v: %v vs %v", tm, want, got)
		}
	}
}

func TestAnalogSawShape(t *testing.T) {
	// more partials must still stay in the saw's rough range
	o := Osc{Wave: SawAnalog, Shape: 100}
	for i := 0; i < 100; i++ {
		tm := float64(i) / 4410.0
		if v := o.Sample(tm, 110); math.Abs(v) > 2 {
			t.Fatalf("analog saw blew up at t=%v: %v", tm, v)
		}
	}
}

func TestNoiseBoundedAndSeeded(t *testing.T) {
	o := Osc{Wave: Noise, Rand: rand.New(rand.NewSource(42))}
	var first []float64
	for i := 0; i < 100; i++ {
		v := o.Sample(0, 0)
		if v < -1 || v > 1 {
			t.Fatalf("noise out of range: %v", v)
		}
		first = append(first, v)
	}

	o.Rand = rand.New(rand.NewSource(42))
	for i, want := range first {
		if got := o.Sample(0, 0); got != want {
			t.Fatalf("seeded noise not reproducible at draw %d: %v vs %v", i, got, want)
		}
	}
}

func TestUnknownWaveIsSilent(t *testing.T) {
	if v := Oscillate(0.5, 440, Wave(99)); v != 0 {
		t.Fatalf("unknown wave produced %v, want silence", v)
	}
}
