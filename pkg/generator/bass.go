package generator

import (
	"github.com/james-see/ripples/pkg/rng"
	"github.com/james-see/ripples/pkg/theory"
)

// BassStyle selects how the bass line follows the harmony.
type BassStyle string

const (
	// BassSimple holds the chord root for the whole chord.
	BassSimple BassStyle = "simple"
	// BassMarco holds the root, then restates it on the last beat.
	BassMarco BassStyle = "marco"
	// BassMarching plays the root in steady quarter notes.
	BassMarching BassStyle = "marching"
)

var bassStyles = []BassStyle{BassSimple, BassMarco, BassMarching}

func chooseBassStyle(src *rng.Source) BassStyle {
	return rng.Choice(src, bassStyles)
}

const bassVelocity = 80

// generateBass derives a bass line from a progression. The line is a
// pure function of the chords and style, so repeated sections share an
// identical bass the way they share harmony.
func generateBass(style BassStyle, prog *Progression) []theory.Event {
	var events []theory.Event
	for _, chord := range prog.Chords {
		pitch := chord.Root - 12

		switch style {
		case BassMarching:
			whole := int(chord.Duration)
			for i := 0; i < whole; i++ {
				events = append(events, theory.NewNote(pitch, theory.Quarter, bassVelocity))
			}
			if frac := chord.Duration - theory.Beats(whole); frac > 0 {
				events = append(events, theory.NewNote(pitch, frac, bassVelocity))
			}
		case BassMarco:
			if chord.Duration <= theory.Quarter {
				events = append(events, theory.NewNote(pitch, chord.Duration, bassVelocity))
				break
			}
			events = append(events, theory.NewNote(pitch, chord.Duration-theory.Quarter, bassVelocity))
			events = append(events, theory.NewNote(pitch, theory.Quarter, bassVelocity))
		default:
			events = append(events, theory.NewNote(pitch, chord.Duration, bassVelocity))
		}
	}
	return events
}
