package synth

// Note is one sounding event. The voice manager owns it: On is stamped when
// the note starts and Off when it is released. While the note is held, Off
// stays at or below On; Off moving past On is what marks the release.
type Note struct {
	ID         int // semitone offset from the reference pitch
	On         float64
	Off        float64
	Active     bool
	Instrument *Instrument
}
