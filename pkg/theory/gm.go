package theory

// General MIDI program numbers, grouped the way the generator picks
// instruments: a lead-like pool for melody, pads and ensembles for
// accompaniment, and the bass group for bass lines.
// https://en.wikipedia.org/wiki/General_MIDI

const (
	AcousticGrandPiano = 0
	Clavinet           = 7
	Celesta            = 8
	Dulcimer           = 15
	DrawbarOrgan       = 16
	TangoAccordion     = 23
	AcousticGuitar     = 24
	GuitarHarmonics    = 31
	AcousticBass       = 32
	SynthBass2         = 39
	Violin             = 40
	Timpani            = 47
	StringEnsemble1    = 48
	OrchestraHit       = 55
	Trumpet            = 56
	SynthBrass2        = 63
	SopranoSax         = 64
	Clarinet           = 71
	Piccolo            = 72
	Ocarina            = 79
	LeadSquare         = 80
	LeadBassAndLead    = 87
	PadFantasia        = 88
	PadSweep           = 95
	Sitar              = 104
	Shanai             = 111
)

func programRange(lo, hi int) []int {
	set := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		set = append(set, p)
	}
	return set
}

var (
	PianoSet               = programRange(AcousticGrandPiano, Clavinet)
	ChromaticPercussionSet = programRange(Celesta, Dulcimer)
	OrganSet               = programRange(DrawbarOrgan, TangoAccordion)
	GuitarSet              = programRange(AcousticGuitar, GuitarHarmonics)
	BassSet                = programRange(AcousticBass, SynthBass2)
	StringsSet             = programRange(Violin, Timpani)
	EnsembleSet            = programRange(StringEnsemble1, OrchestraHit)
	BrassSet               = programRange(Trumpet, SynthBrass2)
	ReedSet                = programRange(SopranoSax, Clarinet)
	PipeSet                = programRange(Piccolo, Ocarina)
	LeadSet                = programRange(LeadSquare, LeadBassAndLead)
	PadSet                 = programRange(PadFantasia, PadSweep)
	EthnicSet              = programRange(Sitar, Shanai)
)

// LeadLikeSet holds every program suitable for carrying a melody.
var LeadLikeSet = concat(
	PianoSet, ChromaticPercussionSet, OrganSet, GuitarSet,
	StringsSet, BrassSet, ReedSet, PipeSet, LeadSet, EthnicSet,
)

// AccompanimentSet holds sustained programs suitable for chords.
var AccompanimentSet = concat(OrganSet, EnsembleSet, PadSet)

func concat(sets ...[]int) []int {
	var out []int
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
