package generator

import (
	"fmt"
	"testing"

	"github.com/james-see/ripples/pkg/rng"
	"github.com/james-see/ripples/pkg/theory"
)

func TestTransitionTableDegreesValid(t *testing.T) {
	for degree, table := range degreeTransitions {
		if len(table) == 0 {
			t.Errorf("degree %d has no allowed transitions", degree)
		}
		total := 0
		for _, dw := range table {
			if dw.degree < 0 || dw.degree > 6 {
				t.Errorf("degree %d transitions to invalid degree %d", degree, dw.degree)
			}
			if dw.weight <= 0 {
				t.Errorf("degree %d -> %d has non-positive weight %d", degree, dw.degree, dw.weight)
			}
			total += dw.weight
		}
		if total == 0 {
			t.Errorf("degree %d transition weights sum to zero", degree)
		}
	}
}

func TestGenerateProgressionChordsDiatonic(t *testing.T) {
	cfg := DefaultConfig()
	key, _ := theory.ParseKey("C")

	for i := 0; i < 30; i++ {
		src := rng.New(fmt.Sprint(i))
		prog, err := generateProgression(src, cfg, key, "a", false)
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		if len(prog.Chords) < cfg.MinChords {
			t.Fatalf("seed %d: %d chords, want at least %d", i, len(prog.Chords), cfg.MinChords)
		}
		for _, chord := range prog.Chords {
			if !key.Contains(chord.Root) {
				t.Fatalf("seed %d: chord root %d (%s) not in C major",
					i, chord.Root, theory.NoteClass(chord.Root))
			}
			if chord.Duration != 2 && chord.Duration != 4 {
				t.Fatalf("seed %d: chord duration %v not in configured set", i, chord.Duration)
			}
			if chord.Inversion < 0 || chord.Inversion > 2 {
				t.Fatalf("seed %d: inversion %d outside 0..2", i, chord.Inversion)
			}
		}
	}
}

func TestGenerateProgressionForceTonic(t *testing.T) {
	cfg := DefaultConfig()
	key, _ := theory.ParseKey("C")

	for i := 0; i < 20; i++ {
		src := rng.New(fmt.Sprint(i))
		prog, err := generateProgression(src, cfg, key, "a", true)
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		if prog.Chords[0].Root != key.Root {
			t.Fatalf("seed %d: opening chord root %d, want tonic %d", i, prog.Chords[0].Root, key.Root)
		}
	}
}

func TestShortProgressionDoubled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChords = 2
	cfg.MaxChords = 4
	key, _ := theory.ParseKey("G")

	src := rng.New("doubling")
	prog, err := generateProgression(src, cfg, key, "a", false)
	if err != nil {
		t.Fatal(err)
	}
	n := len(prog.Chords)
	if n%2 != 0 {
		t.Fatalf("doubled progression has odd length %d", n)
	}
	for i := 0; i < n/2; i++ {
		if prog.Chords[i] != prog.Chords[i+n/2] {
			t.Fatalf("chord %d differs from its doubled copy", i)
		}
	}
}

func TestExtendToSeventh(t *testing.T) {
	tests := []struct {
		quality  theory.Quality
		degree   int
		expected theory.Quality
	}{
		{theory.Major, 0, theory.Major7},
		{theory.Major, 3, theory.Major7},
		{theory.Major, 4, theory.Dominant7},
		{theory.Minor, 1, theory.Minor7},
		{theory.Diminished, 6, theory.HalfDiminished},
		{theory.Sus2, 4, theory.Sus2Seven},
		{theory.Sus2, 0, theory.Sus2}, // no diatonic seventh on the tonic sus2
		{theory.Sus4, 1, theory.Sus4Seven},
		{theory.Sus4, 0, theory.Sus4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_degree%d", tt.quality, tt.degree), func(t *testing.T) {
			if got := extendToSeventh(tt.quality, tt.degree); got != tt.expected {
				t.Errorf("extendToSeventh(%s, %d) = %s, want %s", tt.quality, tt.degree, got, tt.expected)
			}
		})
	}
}

func TestProgressionDuration(t *testing.T) {
	prog := &Progression{Label: "a", Chords: []theory.Chord{
		theory.NewChord(48, theory.Major, 4),
		theory.NewChord(55, theory.Major, 2),
		theory.NewChord(57, theory.Minor, 4),
	}}
	if prog.Duration() != 10 {
		t.Errorf("Duration() = %v, want 10", prog.Duration())
	}
}
