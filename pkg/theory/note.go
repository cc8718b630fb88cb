// Package theory provides the musical value types used by the ripples
// generator: notes, rests, chords, scales and General MIDI constants.
package theory

import "fmt"

// Beats measures musical time in quarter-note beats. Fractional values
// cover dotted and sub-quarter durations.
type Beats float64

// Common note durations, in beats.
const (
	Whole      Beats = 4
	Half       Beats = 2
	QuarterDot Beats = 1.5
	Quarter    Beats = 1
	EighthDot  Beats = 0.75
	Eighth     Beats = 0.5
	Sixteenth  Beats = 0.25
)

var durationSymbols = map[Beats]string{
	Whole:      "whole",
	Half:       "half",
	QuarterDot: "quarter dot",
	Quarter:    "quarter",
	EighthDot:  "8th dot",
	Eighth:     "8th",
	Sixteenth:  "16th",
}

// DurationSymbol names a duration ("quarter", "8th dot", ...). Durations
// outside the standard set would be notated as tied notes.
func DurationSymbol(d Beats) string {
	if sym, ok := durationSymbols[d]; ok {
		return sym
	}
	return fmt.Sprintf("tie dur:%v", float64(d))
}

// Note is a single pitched event. Pitch is a MIDI note number.
type Note struct {
	Pitch    int
	Duration Beats
	Velocity int
}

// NewNote creates a Note, clamping pitch into the MIDI 0–127 range.
func NewNote(pitch int, duration Beats, velocity int) Note {
	if pitch < 0 {
		pitch = 0
	}
	if pitch > 127 {
		pitch = 127
	}
	return Note{Pitch: pitch, Duration: duration, Velocity: velocity}
}

// Name returns the pitch name with octave, e.g. "C_3" for MIDI 60.
func (n Note) Name() string {
	return NoteName(n.Pitch)
}

// Class returns the pitch class without octave, e.g. "C".
func (n Note) Class() string {
	return NoteClass(n.Pitch)
}

func (n Note) String() string {
	return fmt.Sprintf("<Note %s %s %d>", n.Name(), DurationSymbol(n.Duration), n.Velocity)
}

// Rest is an unpitched gap of the given duration.
type Rest struct {
	Duration Beats
}

func (r Rest) String() string {
	return fmt.Sprintf("<Rest %s>", DurationSymbol(r.Duration))
}

// Event is either a Note or a Rest placed on a timeline: melodies and
// bass lines are []Event consumed in order, each event advancing time
// by its duration.
type Event interface {
	EventDuration() Beats
}

// EventDuration implements Event.
func (n Note) EventDuration() Beats { return n.Duration }

// EventDuration implements Event.
func (r Rest) EventDuration() Beats { return r.Duration }

var noteTemplate = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the name with octave for a MIDI note number,
// e.g. NoteName(60) == "C_3". Octaves run -2..8 over the 0-127 range.
func NoteName(pitch int) string {
	return fmt.Sprintf("%s_%d", NoteClass(pitch), pitch/12-2)
}

// NoteClass returns the pitch class name for a MIDI note number.
func NoteClass(pitch int) string {
	return noteTemplate[((pitch%12)+12)%12]
}

var noteNums = func() map[string]int {
	m := make(map[string]int, 128)
	for pitch := 0; pitch <= 127; pitch++ {
		m[NoteName(pitch)] = pitch
	}
	return m
}()

// NoteNum returns the MIDI note number for a name like "C_3", or -1 if
// the name is not a valid note name.
func NoteNum(name string) int {
	if n, ok := noteNums[name]; ok {
		return n
	}
	return -1
}
