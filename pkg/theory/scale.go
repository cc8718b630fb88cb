package theory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidKey is returned when a requested key is not in the
// supported key table.
var ErrInvalidKey = errors.New("unsupported key")

// majorIntervals are the semitone offsets of the major scale degrees
// from the tonic.
var majorIntervals = [7]int{0, 2, 4, 5, 7, 9, 11}

// Key is a major key rooted at a concrete MIDI note. The root octave
// matters: chords are built directly on it.
type Key struct {
	Root int
}

// KeyNames lists the supported key roots, all major.
var KeyNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ParseKey resolves a key name to a Key rooted in octave 2, the
// register the chord generator works in. Accepts a bare pitch class
// ("F#") or a full note name ("F#_2"). Fails with ErrInvalidKey for
// anything else.
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if pitch := NoteNum(name); pitch >= 0 {
		return Key{Root: pitch}, nil
	}
	for _, k := range KeyNames {
		if strings.EqualFold(k, name) {
			return Key{Root: NoteNum(k + "_2")}, nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, name)
}

// Name returns the pitch class of the tonic, e.g. "F#".
func (k Key) Name() string {
	return NoteClass(k.Root)
}

// Degree returns the MIDI pitch of the given scale degree (0-based)
// built on the key's root octave.
func (k Key) Degree(degree int) int {
	return k.Root + majorIntervals[degree%7] + 12*(degree/7)
}

// Contains reports whether the pitch class of the given pitch belongs
// to the key's scale.
func (k Key) Contains(pitch int) bool {
	diff := ((pitch-k.Root)%12 + 12) % 12
	for _, iv := range majorIntervals {
		if diff == iv {
			return true
		}
	}
	return false
}

// Pitches returns every scale pitch across the usable MIDI range in
// ascending order.
func (k Key) Pitches() []int {
	classes := make(map[int]bool, 7)
	for _, iv := range majorIntervals {
		classes[((k.Root+iv)%12+12)%12] = true
	}
	var pitches []int
	for pitch := 0; pitch <= 127; pitch++ {
		if classes[pitch%12] {
			pitches = append(pitches, pitch)
		}
	}
	sort.Ints(pitches)
	return pitches
}
