package synth

import (
	"math"
	"testing"
)

func TestADSRAttackStartsAtZero(t *testing.T) {
	envs := []ADSR{
		{Attack: 0.1, Decay: 0.2, Sustain: 0.8, Release: 0.3, Start: 1.0},
		{Attack: 0.0, Decay: 0.2, Sustain: 0.8, Release: 0.3, Start: 1.0},
		{Attack: 0.01, Decay: 0.0, Sustain: 0.5, Release: 0.0, Start: 0.9},
	}
	for _, env := range envs {
		const on = 2.0
		for _, off := range []float64{0, on - 1, on} {
			if got := env.Amplitude(on, on, off); got != 0 {
				t.Fatalf("%+v: amplitude at note start = %v, want 0", env, got)
			}
		}
	}
}

func TestADSRAttackRamp(t *testing.T) {
	env := ADSR{Attack: 0.1, Decay: 0.2, Sustain: 0.8, Release: 0.3, Start: 1.0}
	const on = 1.0
	if want, got := 0.5, env.Amplitude(on+0.05, on, 0); math.Abs(want-got) > 1e-12 {
		t.Fatalf("mid-attack amplitude = %v, want %v", got, want)
	}
}

func TestADSRSustainHolds(t *testing.T) {
	env := ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.3, Start: 1.0}
	const on = 1.0
	for _, eps := range []float64{0, 0.001, 0.5, 10, 1e6} {
		tm := on + env.Attack + env.Decay + eps
		if got := env.Amplitude(tm, on, 0); got != env.Sustain {
			t.Fatalf("amplitude %v after sustain+%v, want %v", got, eps, env.Sustain)
		}
	}
}

func TestADSRReleaseDecaysToZero(t *testing.T) {
	env := ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.8, Release: 0.5, Start: 1.0}
	const on, off = 1.0, 3.0

	prev := env.Amplitude(off, on, off)
	if prev != env.Sustain {
		t.Fatalf("amplitude at release start = %v, want %v", prev, env.Sustain)
	}
	for tm := off + 0.01; tm <= off+env.Release; tm += 0.01 {
		got := env.Amplitude(tm, on, off)
		if got > prev {
			t.Fatalf("release not monotonic at t=%v: %v > %v", tm, got, prev)
		}
		if got < 0 {
			t.Fatalf("negative amplitude at t=%v: %v", tm, got)
		}
		prev = got
	}
	if got := env.Amplitude(off+env.Release, on, off); got != 0 {
		t.Fatalf("amplitude at end of release = %v, want 0", got)
	}
}

func TestADSRReleaseFromMidAttack(t *testing.T) {
	// releasing during the attack must ramp down from the amplitude the
	// attack had reached, not from the peak
	env := ADSR{Attack: 0.1, Decay: 0.2, Sustain: 0.8, Release: 1.0, Start: 1.0}
	const on = 1.0
	off := on + 0.05 // half way up the attack

	got := env.Amplitude(off+0.5, on, off)
	want := 0.25 // half of the 0.5 reached at release
	if math.Abs(want-got) > 1e-12 {
		t.Fatalf("mid-release amplitude = %v, want %v", got, want)
	}
}

func TestADSRZeroSegmentsStayFinite(t *testing.T) {
	env := ADSR{}
	const on, off = 1.0, 2.0
	for _, tm := range []float64{0, on, on + 0.5, off, off + 0.5, off + 100} {
		got := env.Amplitude(tm, on, off)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("degenerate envelope produced %v at t=%v", got, tm)
		}
	}
}

func TestADSRSnapsSmallAmplitudes(t *testing.T) {
	env := ADSR{Attack: 1.0, Decay: 0.1, Sustain: 0.5, Release: 0.1, Start: 1.0}
	const on = 1.0
	// 0.005 into a 1s attack has only reached 0.005
	if got := env.Amplitude(on+0.005, on, 0); got != 0 {
		t.Fatalf("sub-threshold amplitude not snapped: %v", got)
	}
}
