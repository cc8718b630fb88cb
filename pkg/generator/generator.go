package generator

import (
	"fmt"

	"github.com/james-see/ripples/pkg/rng"
	"github.com/james-see/ripples/pkg/theory"
)

// keyChoices are the key roots a seed may land on when no key is
// requested, all rooted around octave 2.
var keyChoices = []string{
	"C_2", "C#_2", "D_2", "D#_2", "E_2", "F_2",
	"G_2", "G#_2", "A_2", "A#_2", "B_2",
}

// Generator runs the full pipeline for one song. Each run owns its own
// seeded source; a Generator must not be reused for a second song, or
// the determinism contract for the seed breaks.
type Generator struct {
	cfg Config
	src *rng.Source
}

// New validates the config and prepares a generator for one run. Config
// problems surface here, before any randomness is consumed.
func New(cfg Config, seed string) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, src: rng.New(seed)}, nil
}

// params are the run-level musical choices drawn before any material is
// generated.
type params struct {
	tempo           int
	beatsPerMeasure int
	bassStyle       BassStyle
	melodyProgram   int
	chordProgram    int
	bassProgram     int
}

// Generate produces the complete song. The draw order is fixed and is
// part of the engine version: key, beats per measure, tempo, bass
// style, the three instrument programs, then the structure, then one
// progression per distinct label in first-occurrence order, then one
// melody per section occurrence, then the ending. Reordering any of
// these changes every song and requires a Version bump.
func (g *Generator) Generate() (*Song, error) {
	key, err := g.chooseKey()
	if err != nil {
		return nil, err
	}
	p := g.chooseParams()

	structure, err := generateStructure(g.src, g.cfg)
	if err != nil {
		return nil, err
	}
	if g.cfg.SingleSection {
		structure = structure[:1]
	}

	return g.assemble(structure, key, p)
}

// Assemble builds a song over an explicit structure, drawing run
// parameters first. Structures normally come from generateStructure,
// which cannot produce an empty form; the empty check here guards
// direct callers.
func (g *Generator) Assemble(structure Structure, key theory.Key) (*Song, error) {
	return g.assemble(structure, key, g.chooseParams())
}

func (g *Generator) chooseKey() (theory.Key, error) {
	if g.cfg.Key != "" {
		return theory.ParseKey(g.cfg.Key)
	}
	return theory.ParseKey(rng.Choice(g.src, keyChoices))
}

func (g *Generator) chooseParams() params {
	p := params{}
	p.beatsPerMeasure = g.cfg.BeatsPerMeasure
	if p.beatsPerMeasure == 0 {
		p.beatsPerMeasure = rng.Choice(g.src, []int{2, 3, 4, 5, 6, 7})
	}
	p.tempo = g.src.IntRange(g.cfg.TempoMin, g.cfg.TempoMax)
	p.bassStyle = chooseBassStyle(g.src)
	p.melodyProgram = rng.Choice(g.src, theory.LeadLikeSet)
	p.chordProgram = rng.Choice(g.src, theory.AccompanimentSet)
	p.bassProgram = rng.Choice(g.src, theory.BassSet)
	return p
}

func (g *Generator) assemble(structure Structure, key theory.Key, p params) (*Song, error) {
	if len(structure) == 0 {
		return nil, fmt.Errorf("%w: nothing to assemble", ErrEmptyStructure)
	}

	// First pass: one progression per distinct label, memoized in
	// first-occurrence order. Read-only from here on.
	progressions := make(map[string]*Progression)
	for i, label := range structure {
		if _, ok := progressions[label]; ok {
			continue
		}
		prog, err := generateProgression(g.src, g.cfg, key, label, i == 0)
		if err != nil {
			return nil, err
		}
		progressions[label] = prog
	}

	// Second pass: a fresh melody for every occurrence. Repeated labels
	// reuse identical harmony but never identical melodic draws.
	sections := make([]Section, 0, len(structure))
	var start theory.Beats
	for _, label := range structure {
		prog := progressions[label]
		melody, err := generateMelody(g.src, g.cfg, key, prog)
		if err != nil {
			return nil, err
		}
		sections = append(sections, Section{
			Label:       label,
			Start:       start,
			Progression: prog,
			Melody:      melody,
			Bass:        generateBass(p.bassStyle, prog),
		})
		start += prog.Duration()
	}

	song := &Song{
		Seed:            g.src.Seed(),
		Key:             key,
		Tempo:           p.tempo,
		BeatsPerMeasure: p.beatsPerMeasure,
		BassStyle:       p.bassStyle,
		MelodyProgram:   p.melodyProgram,
		ChordProgram:    p.chordProgram,
		BassProgram:     p.bassProgram,
		Structure:       structure,
		Progressions:    progressions,
		Sections:        sections,
	}
	song.Ending = g.generateEnding(key, p)
	return song, nil
}

// generateEnding closes the song on a held tonic chord, the root an
// octave down in the bass, and one sustained chord tone on top.
func (g *Generator) generateEnding(key theory.Key, p params) Ending {
	chord := theory.NewChord(key.Root, theory.Major, theory.Beats(p.beatsPerMeasure))
	tone := rng.Choice(g.src, chord.Spread(true))
	return Ending{
		Chord:  chord,
		Bass:   theory.NewNote(key.Root-12, theory.Quarter, bassVelocity),
		Melody: theory.NewNote(tone.Pitch+12, chord.Duration, g.cfg.VelocityBase),
	}
}
