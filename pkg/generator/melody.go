package generator

import (
	"github.com/james-see/ripples/pkg/rng"
	"github.com/james-see/ripples/pkg/theory"
)

// Melody is the note/rest sequence generated over one section
// occurrence. Its total duration equals the duration of the
// progression it was generated over, exactly.
type Melody []theory.Event

// Duration returns the total melody length in beats.
func (m Melody) Duration() theory.Beats {
	var total theory.Beats
	for _, ev := range m {
		total += ev.EventDuration()
	}
	return total
}

// Candidate pitch classes carry different base weights: chord tones
// anchor the harmony, scale tones fill in motion, passing tones add
// occasional chromatic color.
const (
	chordToneWeight   = 12
	scaleToneWeight   = 4
	passingToneWeight = 1
)

// contourWeight scales a candidate's weight by its distance in
// semitones from the previous melody pitch. Steps are favored over
// leaps; repeats are possible but not sticky; leaps over an octave are
// rare but never impossible, so the weight floor stays above zero.
func contourWeight(distance int) int {
	switch {
	case distance == 0:
		return 3
	case distance <= 2:
		return 6
	case distance <= 4:
		return 5
	case distance <= 7:
		return 3
	case distance <= 11:
		return 2
	default:
		return 1
	}
}

type candidate struct {
	pitch  int
	weight int
}

// generateMelody produces a melody spanning the whole progression.
// Each chord's duration is cut into a random number of equal slots;
// each slot sounds a note (or, rarely, rests), with the pitch drawn
// from chord tones, scale tones and passing tones re-weighted by
// proximity to the previous pitch. This runs once per section
// occurrence, so a repeated label gets fresh melodic material over
// identical harmony.
func generateMelody(src *rng.Source, cfg Config, key theory.Key, prog *Progression) (Melody, error) {
	var melody Melody
	prev := -1

	for _, chord := range prog.Chords {
		count := src.IntRange(cfg.MinSubdivisions, cfg.MaxSubdivisions)
		slot := chord.Duration / theory.Beats(count)

		for i := 0; i < count; i++ {
			duration := slot
			if i == count-1 {
				// The last slot absorbs the division remainder so the
				// chord's span is covered exactly.
				duration = chord.Duration - slot*theory.Beats(count-1)
			}

			// The very first slot of a melody always sounds, and always
			// lands on a chord tone to plant the harmony.
			if prev < 0 {
				pitch := melodyChordTone(src, cfg, chord)
				melody = append(melody, theory.NewNote(pitch, duration, humanizedVelocity(src, cfg)))
				prev = pitch
				continue
			}

			if src.Bool(cfg.RestWeight, cfg.NoteWeight) {
				melody = append(melody, theory.Rest{Duration: duration})
				continue
			}

			pitch, err := pickPitch(src, cfg, key, chord, prev)
			if err != nil {
				return nil, err
			}
			melody = append(melody, theory.NewNote(pitch, duration, humanizedVelocity(src, cfg)))
			prev = pitch
		}
	}

	return melody, nil
}

// melodyChordTone lifts a random tone of the chord into the melody
// register, folded into the playable range.
func melodyChordTone(src *rng.Source, cfg Config, chord theory.Chord) int {
	tone := rng.Choice(src, chord.Spread(true))
	return clampToRange(tone.Pitch+12, cfg.MelodyRange)
}

// pickPitch draws the next melody pitch. Candidates are assembled from
// the chord (strong), the scale (weaker) and chromatic neighbors of the
// previous pitch (weakest), then re-weighted by contour distance before
// a single weighted choice decides.
func pickPitch(src *rng.Source, cfg Config, key theory.Key, chord theory.Chord, prev int) (int, error) {
	seen := make(map[int]bool)
	var candidates []int
	var weights []int

	add := func(pitch, base int) {
		if pitch < cfg.MelodyRange.Low || pitch > cfg.MelodyRange.High || seen[pitch] {
			return
		}
		seen[pitch] = true
		candidates = append(candidates, pitch)
		weights = append(weights, base*contourWeight(abs(pitch-prev)))
	}

	for _, tone := range chord.Spread(true) {
		add(clampToRange(tone.Pitch+12, cfg.MelodyRange), chordToneWeight)
	}

	for _, pitch := range key.Pitches() {
		if pitch >= cfg.MelodyRange.Low && pitch <= cfg.MelodyRange.High {
			add(pitch, scaleToneWeight)
		}
	}

	// Chromatic passing tones: the out-of-scale pitches a half step or
	// whole step from where the melody is now.
	for _, delta := range []int{-2, -1, 1, 2} {
		if pitch := prev + delta; !key.Contains(pitch) {
			add(pitch, passingToneWeight)
		}
	}

	return rng.WeightedChoice(src, candidates, weights)
}

// clampToRange folds a pitch into the playable range by octaves.
func clampToRange(pitch int, r theory.PitchRange) int {
	for pitch < r.Low {
		pitch += 12
	}
	for pitch > r.High {
		pitch -= 12
	}
	return pitch
}

func humanizedVelocity(src *rng.Source, cfg Config) int {
	v := src.IntRange(cfg.VelocityBase-cfg.VelocitySpread, cfg.VelocityBase+cfg.VelocitySpread)
	if v > 127 {
		v = 127
	}
	if v < 1 {
		v = 1
	}
	return v
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
