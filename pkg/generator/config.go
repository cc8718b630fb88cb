// Package generator implements the ripples song engine: a deterministic
// pipeline that derives a song form, chord progressions and melodies
// from a single seed.
package generator

import (
	"errors"
	"fmt"

	"github.com/james-see/ripples/pkg/theory"
)

// Version identifies the generative engine. It is part of the output
// filename so a seed can be reproduced later against the same engine.
// Bump it whenever a change alters any random draw.
const Version = 13

// ErrConfig is returned for invalid generation bounds, detected before
// any randomness is consumed.
var ErrConfig = errors.New("invalid generation config")

// ErrEmptyStructure is returned when an empty song structure reaches
// the assembler.
var ErrEmptyStructure = errors.New("empty song structure")

// Config holds every tunable of the generation pipeline. Zero values
// are not usable; start from DefaultConfig.
type Config struct {
	// Song form bounds: number of section occurrences and how many
	// distinct labels may appear.
	MinSections  int
	MaxSections  int
	AlphabetSize int

	// Weights for the repeat-existing vs introduce-new decision at
	// each structure position after the first.
	RepeatWeight    int
	IntroduceWeight int

	// Harmony: chords per section and the allowed chord durations.
	MinChords      int
	MaxChords      int
	ChordDurations []theory.Beats

	// Chance of extending a triad to a seventh chord.
	SeventhWeight int
	PlainWeight   int

	// Melody: notes per chord and the playable range.
	MinSubdivisions int
	MaxSubdivisions int
	MelodyRange     theory.PitchRange

	// Humanization band for melody loudness.
	VelocityBase   int
	VelocitySpread int

	// Weights for sounding a note vs resting in a melody slot.
	NoteWeight int
	RestWeight int

	// Tempo range in BPM.
	TempoMin int
	TempoMax int

	// Optional overrides. Empty Key and zero BeatsPerMeasure mean the
	// generator picks them from the seed.
	Key             string
	BeatsPerMeasure int

	// SingleSection truncates the form to its first section, for quick
	// previews.
	SingleSection bool
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		MinSections:     3,
		MaxSections:     7,
		AlphabetSize:    3,
		RepeatWeight:    65,
		IntroduceWeight: 35,

		MinChords:      2,
		MaxChords:      8,
		ChordDurations: []theory.Beats{2, 4},
		SeventhWeight:  20,
		PlainWeight:    80,

		MinSubdivisions: 1,
		MaxSubdivisions: 4,
		MelodyRange: theory.PitchRange{
			Low:  theory.NoteNum("C_2"),
			High: theory.NoteNum("C_5"),
		},
		VelocityBase:   100,
		VelocitySpread: 8,
		NoteWeight:     100,
		RestWeight:     10,

		TempoMin: 90,
		TempoMax: 124,
	}
}

// Validate checks the config before any randomness is consumed.
func (c Config) Validate() error {
	switch {
	case c.MaxSections == 0:
		return fmt.Errorf("%w: MaxSections is 0", ErrConfig)
	case c.MinSections < 1 || c.MinSections > c.MaxSections:
		return fmt.Errorf("%w: section bounds [%d,%d]", ErrConfig, c.MinSections, c.MaxSections)
	case c.AlphabetSize < 1 || c.AlphabetSize > 26:
		return fmt.Errorf("%w: alphabet size %d", ErrConfig, c.AlphabetSize)
	case c.RepeatWeight < 0 || c.IntroduceWeight < 0 || c.RepeatWeight+c.IntroduceWeight == 0:
		return fmt.Errorf("%w: repeat/introduce weights %d/%d", ErrConfig, c.RepeatWeight, c.IntroduceWeight)
	case c.MinChords < 1 || c.MinChords > c.MaxChords:
		return fmt.Errorf("%w: chord bounds [%d,%d]", ErrConfig, c.MinChords, c.MaxChords)
	case len(c.ChordDurations) == 0:
		return fmt.Errorf("%w: no chord durations", ErrConfig)
	case c.MinSubdivisions < 1 || c.MinSubdivisions > c.MaxSubdivisions:
		return fmt.Errorf("%w: subdivision bounds [%d,%d]", ErrConfig, c.MinSubdivisions, c.MaxSubdivisions)
	case c.MelodyRange.High-c.MelodyRange.Low < 11:
		// Octave folding needs at least a full octave to land in.
		return fmt.Errorf("%w: melody range [%d,%d]", ErrConfig, c.MelodyRange.Low, c.MelodyRange.High)
	case c.NoteWeight < 0 || c.RestWeight < 0 || c.NoteWeight+c.RestWeight == 0:
		return fmt.Errorf("%w: note/rest weights %d/%d", ErrConfig, c.NoteWeight, c.RestWeight)
	case c.TempoMin < 1 || c.TempoMin > c.TempoMax:
		return fmt.Errorf("%w: tempo bounds [%d,%d]", ErrConfig, c.TempoMin, c.TempoMax)
	case c.BeatsPerMeasure < 0:
		return fmt.Errorf("%w: beats per measure %d", ErrConfig, c.BeatsPerMeasure)
	}
	for _, d := range c.ChordDurations {
		if d <= 0 {
			return fmt.Errorf("%w: chord duration %v", ErrConfig, d)
		}
	}
	return nil
}
