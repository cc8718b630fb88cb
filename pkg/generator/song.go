package generator

import (
	"fmt"
	"strings"

	"github.com/james-see/ripples/pkg/theory"
)

// Section is one occurrence of a labeled section in the assembled
// song: the label's shared progression, a fresh melody, a bass line,
// and the cumulative start offset in beats.
type Section struct {
	Label       string
	Start       theory.Beats
	Progression *Progression
	Melody      Melody
	Bass        []theory.Event
}

// Ending is the final cadence appended after the last section: a held
// tonic chord with a bass root under it and one sustained chord tone
// on top.
type Ending struct {
	Chord  theory.Chord
	Bass   theory.Note
	Melody theory.Note
}

// Song is the complete generated piece. It is assembled once per run
// and not mutated afterwards; rendering to MIDI reads it as-is.
type Song struct {
	Seed            string
	Key             theory.Key
	Tempo           int
	BeatsPerMeasure int
	BassStyle       BassStyle

	// General MIDI programs for the three tracks.
	MelodyProgram int
	ChordProgram  int
	BassProgram   int

	Structure    Structure
	Progressions map[string]*Progression
	Sections     []Section
	Ending       Ending
}

// Duration returns the summed duration of all section occurrences,
// excluding the ending cadence.
func (s *Song) Duration() theory.Beats {
	var total theory.Beats
	for _, sec := range s.Sections {
		total += sec.Progression.Duration()
	}
	return total
}

// TotalDuration includes the ending cadence.
func (s *Song) TotalDuration() theory.Beats {
	return s.Duration() + s.Ending.Chord.Duration
}

// MelodyLine concatenates every section melody plus the ending note
// into one ordered event timeline.
func (s *Song) MelodyLine() []theory.Event {
	var events []theory.Event
	for _, sec := range s.Sections {
		events = append(events, sec.Melody...)
	}
	return append(events, s.Ending.Melody)
}

// BassLine concatenates every section bass line plus the ending root.
// The ending bass note is shorter than the ending chord; the gap is
// deliberate silence under the final sustain.
func (s *Song) BassLine() []theory.Event {
	var events []theory.Event
	for _, sec := range s.Sections {
		events = append(events, sec.Bass...)
	}
	return append(events, s.Ending.Bass)
}

// ChordLine returns every chord of the song in timeline order,
// including the ending chord.
func (s *Song) ChordLine() []theory.Chord {
	var chords []theory.Chord
	for _, sec := range s.Sections {
		chords = append(chords, sec.Progression.Chords...)
	}
	return append(chords, s.Ending.Chord)
}

// Summary formats a human-readable description of the song for the CLI
// and TUI.
func (s *Song) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Seed:    %s\n", s.Seed)
	fmt.Fprintf(&b, "Key:     %s major\n", s.Key.Name())
	fmt.Fprintf(&b, "Time:    %d/4\n", s.BeatsPerMeasure)
	fmt.Fprintf(&b, "Tempo:   %d BPM\n", s.Tempo)
	fmt.Fprintf(&b, "Bass:    %s\n", s.BassStyle)
	fmt.Fprintf(&b, "Form:    %s\n", s.Structure)
	for _, label := range s.Structure.Labels() {
		fmt.Fprintf(&b, "Section %s\n%s\n", label, s.Progressions[label].Listing())
	}
	return b.String()
}
