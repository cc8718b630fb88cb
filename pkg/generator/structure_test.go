package generator

import (
	"fmt"
	"testing"

	"github.com/james-see/ripples/pkg/rng"
)

func TestGenerateStructureBounds(t *testing.T) {
	cfg := DefaultConfig()
	for i := 0; i < 100; i++ {
		src := rng.New(fmt.Sprint(i))
		structure, err := generateStructure(src, cfg)
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		if len(structure) == 0 {
			t.Fatalf("seed %d: empty structure", i)
		}
		if len(structure) < cfg.MinSections || len(structure) > cfg.MaxSections {
			t.Fatalf("seed %d: length %d outside [%d,%d]", i, len(structure), cfg.MinSections, cfg.MaxSections)
		}
	}
}

func TestGenerateStructureFirstLabelNew(t *testing.T) {
	for i := 0; i < 50; i++ {
		src := rng.New(fmt.Sprint(i))
		structure, err := generateStructure(src, DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		if structure[0] != "a" {
			t.Fatalf("seed %d: first label %q, want %q", i, structure[0], "a")
		}
	}
}

func TestGenerateStructureLabelsContiguous(t *testing.T) {
	// Labels are introduced in order: a form may not use "c" unless
	// "b" already appeared.
	cfg := DefaultConfig()
	for i := 0; i < 100; i++ {
		src := rng.New(fmt.Sprint(i))
		structure, err := generateStructure(src, cfg)
		if err != nil {
			t.Fatal(err)
		}
		labels := structure.Labels()
		for j, label := range labels {
			if label != labelFor(j) {
				t.Fatalf("seed %d: labels %v not introduced in order", i, labels)
			}
		}
		if len(labels) > cfg.AlphabetSize {
			t.Fatalf("seed %d: %d labels exceed alphabet size %d", i, len(labels), cfg.AlphabetSize)
		}
	}
}

func TestGenerateStructureRepetitionShowsUp(t *testing.T) {
	// With a repeat-heavy bias and forms longer than the alphabet,
	// most seeds should repeat at least one label; require one in 20.
	cfg := DefaultConfig()
	cfg.MinSections = 5
	cfg.MaxSections = 7

	for i := 0; i < 20; i++ {
		src := rng.New(fmt.Sprint(i))
		structure, err := generateStructure(src, cfg)
		if err != nil {
			t.Fatal(err)
		}
		if len(structure.Labels()) < len(structure) {
			return
		}
	}
	t.Error("no structure in 20 seeds repeated a label")
}

func TestStructureString(t *testing.T) {
	s := Structure{"a", "a", "b", "a", "c"}
	if s.String() != "aabac" {
		t.Errorf("String() = %q, want aabac", s.String())
	}
	labels := s.Labels()
	if len(labels) != 3 || labels[0] != "a" || labels[1] != "b" || labels[2] != "c" {
		t.Errorf("Labels() = %v, want [a b c]", labels)
	}
}
