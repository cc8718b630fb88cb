package generator

import (
	"strings"

	"github.com/james-see/ripples/pkg/rng"
)

// Structure is the song form: an ordered sequence of section labels,
// e.g. [a a b a c]. Repetition in the form is what makes the output
// feel like a song rather than a stream of unrelated material.
type Structure []string

func (s Structure) String() string {
	return strings.Join(s, "")
}

// Labels returns the distinct labels in first-occurrence order.
func (s Structure) Labels() []string {
	var labels []string
	seen := make(map[string]bool, len(s))
	for _, label := range s {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// labelFor maps label index 0, 1, 2... to "a", "b", "c"...
func labelFor(i int) string {
	return string(rune('a' + i))
}

// generateStructure produces the song form. The first position always
// introduces a fresh label; every later position weighted-chooses
// between repeating an already-used label and introducing the next
// unused one. New labels enter in alphabetical order so the form reads
// canonically (aaba, not acab).
func generateStructure(src *rng.Source, cfg Config) (Structure, error) {
	length := src.IntRange(cfg.MinSections, cfg.MaxSections)

	structure := make(Structure, 0, length)
	structure = append(structure, labelFor(0))
	used := 1

	for i := 1; i < length; i++ {
		repeat := true
		if used < cfg.AlphabetSize {
			var err error
			repeat, err = rng.WeightedChoice(src,
				[]bool{true, false},
				[]int{cfg.RepeatWeight, cfg.IntroduceWeight})
			if err != nil {
				return nil, err
			}
		}

		if repeat {
			structure = append(structure, structure[src.IntRange(0, i-1)])
		} else {
			structure = append(structure, labelFor(used))
			used++
		}
	}

	return structure, nil
}
