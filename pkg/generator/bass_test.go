package generator

import (
	"math"
	"testing"

	"github.com/james-see/ripples/pkg/theory"
)

func bassDuration(events []theory.Event) theory.Beats {
	var total theory.Beats
	for _, ev := range events {
		total += ev.EventDuration()
	}
	return total
}

func TestGenerateBassStyles(t *testing.T) {
	key, _ := theory.ParseKey("C")
	prog := testProgression(key)

	tests := []struct {
		style BassStyle
		// events per 4-beat chord
		perWholeChord int
	}{
		{BassSimple, 1},
		{BassMarco, 2},
		{BassMarching, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			events := bassDuration(generateBass(tt.style, prog))
			if diff := float64(events - prog.Duration()); math.Abs(diff) > 1e-9 {
				t.Errorf("bass duration off by %g beats", diff)
			}

			single := &Progression{Label: "a", Chords: prog.Chords[:1]}
			if got := len(generateBass(tt.style, single)); got != tt.perWholeChord {
				t.Errorf("%s bass over one whole chord has %d events, want %d", tt.style, got, tt.perWholeChord)
			}
		})
	}
}

func TestGenerateBassFollowsRoots(t *testing.T) {
	key, _ := theory.ParseKey("C")
	prog := testProgression(key)

	events := generateBass(BassSimple, prog)
	if len(events) != len(prog.Chords) {
		t.Fatalf("simple bass has %d events for %d chords", len(events), len(prog.Chords))
	}
	for i, ev := range events {
		note, ok := ev.(theory.Note)
		if !ok {
			t.Fatalf("bass event %d is not a note", i)
		}
		if note.Pitch != prog.Chords[i].Root-12 {
			t.Errorf("bass note %d pitch %d, want root-12 %d", i, note.Pitch, prog.Chords[i].Root-12)
		}
	}
}

func TestGenerateBassMarcoShortChord(t *testing.T) {
	// A chord no longer than a quarter cannot split into held+restated
	prog := &Progression{Label: "a", Chords: []theory.Chord{
		theory.NewChord(48, theory.Major, theory.Quarter),
	}}
	events := generateBass(BassMarco, prog)
	if len(events) != 1 {
		t.Fatalf("marco bass over a quarter chord has %d events, want 1", len(events))
	}
	if events[0].EventDuration() != theory.Quarter {
		t.Errorf("duration %v, want %v", events[0].EventDuration(), theory.Quarter)
	}
}
