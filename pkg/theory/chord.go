package theory

import "fmt"

// Quality identifies the interval structure of a chord.
type Quality string

// Supported chord qualities. The seventh variants keep the diatonic
// sevenths used when a plain triad is extended.
const (
	Major          Quality = "M"
	Minor          Quality = "m"
	Diminished     Quality = "d"
	Sus2           Quality = "sus2"
	Sus4           Quality = "sus4"
	Dominant7      Quality = "M7"
	Major7         Quality = "Mmaj7"
	Minor7         Quality = "m7"
	MinorMajor7    Quality = "mmaj7"
	Diminished7    Quality = "d7"
	HalfDiminished Quality = "dmin7dim5"
	Seven5Flat     Quality = "M7dim5"
	Sus2Seven      Quality = "7sus2"
	Sus4Seven      Quality = "7sus4"
)

// qualityIntervals defines the semitone offsets from the root for each
// chord quality.
var qualityIntervals = map[Quality][]int{
	Major:          {0, 4, 7},
	Minor:          {0, 3, 7},
	Diminished:     {0, 3, 6},
	Sus2:           {0, 2, 7},
	Sus4:           {0, 5, 7},
	Dominant7:      {0, 4, 7, 10},
	Major7:         {0, 4, 7, 11},
	Minor7:         {0, 3, 7, 10},
	MinorMajor7:    {0, 3, 7, 11},
	Diminished7:    {0, 3, 6, 9},
	HalfDiminished: {0, 3, 6, 10},
	Seven5Flat:     {0, 4, 6, 10},
	Sus2Seven:      {0, 2, 7, 10},
	Sus4Seven:      {0, 5, 7, 10},
}

// AccompanimentRange is the default clamp range for spread chord voicings,
// keeping accompaniment out of both the bass and melody registers.
var AccompanimentRange = PitchRange{Low: NoteNum("A_1"), High: NoteNum("D_3")}

// PitchRange is an inclusive playable range of MIDI note numbers.
type PitchRange struct {
	Low  int
	High int
}

// Contains reports whether pitch lies inside the range.
func (r PitchRange) Contains(pitch int) bool {
	return pitch >= r.Low && pitch <= r.High
}

// Chord is a root pitch plus quality, voiced with an inversion, held
// for a duration in beats.
type Chord struct {
	Root      int
	Quality   Quality
	Inversion int
	Duration  Beats
	Velocity  int
}

// NewChord creates a root-position chord with default accompaniment
// loudness.
func NewChord(root int, quality Quality, duration Beats) Chord {
	return Chord{Root: root, Quality: quality, Duration: duration, Velocity: 80}
}

// Name returns e.g. "CM" or "Am7".
func (c Chord) Name() string {
	return NoteClass(c.Root) + string(c.Quality)
}

// Spread splits the chord into its individual notes, applying the
// inversion. When clamp is true, notes outside AccompanimentRange are
// folded back in by octaves.
func (c Chord) Spread(clamp bool) []Note {
	intervals := qualityIntervals[c.Quality]
	notes := make([]Note, len(intervals))
	for i, shift := range intervals {
		notes[i] = NewNote(c.Root+shift, c.Duration, c.Velocity)
	}

	if c.Inversion >= 1 {
		notes[0].Pitch += 12
	}
	if c.Inversion >= 2 {
		notes[1].Pitch += 12
	}

	if clamp {
		for i := range notes {
			if notes[i].Pitch < AccompanimentRange.Low {
				notes[i].Pitch += 12
			}
			if notes[i].Pitch > AccompanimentRange.High {
				notes[i].Pitch -= 12
			}
		}
	}

	return notes
}

func (c Chord) String() string {
	return fmt.Sprintf("<Chord %s (i%d)>", c.Name(), c.Inversion)
}
