package generator

import (
	"github.com/james-see/ripples/pkg/rng"
	"github.com/james-see/ripples/pkg/theory"
)

// Progression is the chord sequence owned by one section label. It is
// generated once per distinct label and reused, unchanged, for every
// occurrence of that label in the form.
type Progression struct {
	Label  string
	Chords []theory.Chord
}

// Duration returns the total length of the progression in beats.
func (p *Progression) Duration() theory.Beats {
	var total theory.Beats
	for _, c := range p.Chords {
		total += c.Duration
	}
	return total
}

// Listing formats the progression for log output, four chords per line.
func (p *Progression) Listing() string {
	var b []byte
	for i, c := range p.Chords {
		cell := []byte("|" + theory.DurationSymbol(c.Duration) + " " + c.Name())
		for len(cell) < 14 {
			cell = append(cell, ' ')
		}
		b = append(b, cell...)
		if (i+1)%4 == 0 && i != len(p.Chords)-1 {
			b = append(b, '\n')
		}
	}
	return string(b)
}

// Scale degrees 0..6 build diatonic triads of these qualities in a
// major key.
var degreeTriads = [7]theory.Quality{
	theory.Major, theory.Minor, theory.Minor, theory.Major,
	theory.Major, theory.Minor, theory.Diminished,
}

type degreeWeight struct {
	degree int
	weight int
}

// degreeTransitions is the harmonic transition table: for each scale
// degree, the degrees allowed to follow, and how likely each move is.
// Common-practice tonal motion: the tonic opens everywhere, pre-dominants
// (ii, IV) push toward the dominant, and the dominant resolves to the
// tonic or deceptively to vi.
var degreeTransitions = [7][]degreeWeight{
	0: {{0, 10}, {1, 15}, {3, 30}, {4, 30}, {5, 15}},      // I
	1: {{4, 60}, {6, 15}, {2, 10}, {3, 15}},               // ii
	2: {{5, 50}, {3, 30}, {1, 20}},                        // iii
	3: {{4, 40}, {0, 30}, {1, 15}, {6, 15}},               // IV
	4: {{0, 60}, {5, 25}, {3, 15}},                        // V
	5: {{1, 30}, {3, 35}, {2, 15}, {4, 20}},               // vi
	6: {{0, 70}, {4, 30}},                                 // vii°
}

// openingWeights bias the first chord of a progression heavily toward
// the tonic to establish the key.
var openingWeights = []degreeWeight{
	{0, 70}, {3, 10}, {4, 10}, {5, 8}, {1, 2},
}

// susQualities lists the sus decorations that stay diatonic on each
// degree.
var susQualities = map[int][]theory.Quality{
	0: {theory.Sus2, theory.Sus4},
	1: {theory.Sus2, theory.Sus4},
	3: {theory.Sus2},
	4: {theory.Sus2, theory.Sus4},
	5: {theory.Sus2, theory.Sus4},
}

// sevenSusDegrees marks where a sus chord may carry a diatonic seventh.
var sevenSusDegrees = map[theory.Quality]map[int]bool{
	theory.Sus2: {1: true, 4: true, 5: true},
	theory.Sus4: {1: true, 2: true, 3: true, 5: true},
}

// generateProgression builds a chord sequence for one section label as
// a constrained random walk over degreeTransitions. When forceTonic is
// set (the form's opening section), the first chord is the tonic
// outright instead of merely tonic-biased. Progressions shorter than
// five chords are doubled back-to-back; the harmony repeats while the
// melody generated over it still varies per occurrence.
func generateProgression(src *rng.Source, cfg Config, key theory.Key, label string, forceTonic bool) (*Progression, error) {
	count := src.IntRange(cfg.MinChords, cfg.MaxChords)

	chords := make([]theory.Chord, 0, count*2)
	degree := 0
	for i := 0; i < count; i++ {
		var err error
		if i == 0 {
			if !forceTonic {
				degree, err = pickDegree(src, openingWeights)
			}
		} else {
			degree, err = pickDegree(src, degreeTransitions[degree])
		}
		if err != nil {
			return nil, err
		}

		chord, err := buildChord(src, cfg, key, degree)
		if err != nil {
			return nil, err
		}
		chords = append(chords, chord)
	}

	if count < 5 {
		chords = append(chords, chords...)
	}

	return &Progression{Label: label, Chords: chords}, nil
}

func pickDegree(src *rng.Source, table []degreeWeight) (int, error) {
	degrees := make([]int, len(table))
	weights := make([]int, len(table))
	for i, dw := range table {
		degrees[i] = dw.degree
		weights[i] = dw.weight
	}
	return rng.WeightedChoice(src, degrees, weights)
}

// buildChord voices one chord on the given degree: duration from the
// configured set, an occasional sus or seventh decoration, and a random
// inversion.
func buildChord(src *rng.Source, cfg Config, key theory.Key, degree int) (theory.Chord, error) {
	quality := degreeTriads[degree]

	if sus, ok := susQualities[degree]; ok && src.Bool(15, 85) {
		quality = rng.Choice(src, sus)
	}

	seventh, err := rng.WeightedChoice(src,
		[]bool{true, false},
		[]int{cfg.SeventhWeight, cfg.PlainWeight})
	if err != nil {
		return theory.Chord{}, err
	}
	if seventh {
		quality = extendToSeventh(quality, degree)
	}

	chord := theory.NewChord(key.Degree(degree), quality, rng.Choice(src, cfg.ChordDurations))
	chord.Inversion = rng.Choice(src, []int{0, 1, 2})
	return chord, nil
}

// extendToSeventh picks the seventh that keeps the chord in the key:
// major sevenths on I and IV, the dominant seventh on V, minor sevenths
// on the minor degrees, and the half-diminished seventh on vii°.
func extendToSeventh(quality theory.Quality, degree int) theory.Quality {
	switch quality {
	case theory.Major:
		if degree == 4 {
			return theory.Dominant7
		}
		return theory.Major7
	case theory.Minor:
		return theory.Minor7
	case theory.Diminished:
		return theory.HalfDiminished
	case theory.Sus2:
		if sevenSusDegrees[theory.Sus2][degree] {
			return theory.Sus2Seven
		}
	case theory.Sus4:
		if sevenSusDegrees[theory.Sus4][degree] {
			return theory.Sus4Seven
		}
	}
	return quality
}
