package theory

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		root int
	}{
		{"C", 48},
		{"F#", 54},
		{"b", 59},
		{"C_2", 48},
		{"A_3", 69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.name)
			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.name, err)
			}
			if key.Root != tt.root {
				t.Errorf("ParseKey(%q).Root = %d, want %d", tt.name, key.Root, tt.root)
			}
		})
	}
}

func TestParseKeyInvalid(t *testing.T) {
	for _, name := range []string{"H", "X#", "", "Cmixolydian"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseKey(name)
			if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("ParseKey(%q) error = %v, want ErrInvalidKey", name, err)
			}
		})
	}
}

func TestKeyDegrees(t *testing.T) {
	key, _ := ParseKey("C")

	// C major: C D E F G A B
	want := []int{48, 50, 52, 53, 55, 57, 59}
	for degree, pitch := range want {
		if got := key.Degree(degree); got != pitch {
			t.Errorf("Degree(%d) = %d, want %d", degree, got, pitch)
		}
	}

	// Degree 7 wraps to the tonic an octave up
	if got := key.Degree(7); got != 60 {
		t.Errorf("Degree(7) = %d, want 60", got)
	}
}

func TestKeyContains(t *testing.T) {
	key, _ := ParseKey("C")
	for _, pitch := range []int{48, 60, 62, 64, 65, 67, 69, 71, 72} {
		if !key.Contains(pitch) {
			t.Errorf("C major should contain pitch %d (%s)", pitch, NoteName(pitch))
		}
	}
	for _, pitch := range []int{49, 61, 63, 66, 68, 70} {
		if key.Contains(pitch) {
			t.Errorf("C major should not contain pitch %d (%s)", pitch, NoteName(pitch))
		}
	}
}

func TestKeyPitches(t *testing.T) {
	key, _ := ParseKey("D")
	pitches := key.Pitches()

	if len(pitches) == 0 {
		t.Fatal("Pitches() returned empty list")
	}

	for i := 1; i < len(pitches); i++ {
		if pitches[i] <= pitches[i-1] {
			t.Fatalf("Pitches() not strictly ascending at index %d", i)
		}
	}

	for _, p := range pitches {
		if !key.Contains(p) {
			t.Errorf("Pitches() includes %d (%s), not in D major", p, NoteName(p))
		}
	}

	// F natural is not in D major
	for _, p := range pitches {
		if p == 65 {
			t.Error("Pitches() includes F_3, not in D major")
		}
	}
}

func TestInstrumentSets(t *testing.T) {
	if len(BassSet) != 8 {
		t.Errorf("BassSet has %d programs, want 8", len(BassSet))
	}
	for _, p := range LeadLikeSet {
		if p < 0 || p > 127 {
			t.Errorf("LeadLikeSet program %d outside GM range", p)
		}
	}
	for _, p := range AccompanimentSet {
		if p < 0 || p > 127 {
			t.Errorf("AccompanimentSet program %d outside GM range", p)
		}
	}
}
