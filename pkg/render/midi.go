// Package render writes generated songs to Standard MIDI Files.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/james-see/ripples/pkg/generator"
	"github.com/james-see/ripples/pkg/theory"
)

// Renderer converts a Song into a three-track SMF: melody, chords and
// bass on their own tracks and channels. Rendering is a pure function
// of the Song; all randomness happens earlier, in generation.
type Renderer struct {
	ticksPerQuarter uint16
}

// New creates a Renderer at the standard 480 ticks per quarter note.
func New() *Renderer {
	return &Renderer{ticksPerQuarter: 480}
}

// Filename returns the conventional output name for a seed, e.g.
// "song-v13-42.mid". The engine version in the name ties the file to
// the algorithm that can reproduce it.
func Filename(seed string) string {
	return fmt.Sprintf("song-v%d-%s.mid", generator.Version, seed)
}

// RenderSMF serializes the song to MIDI file bytes.
func (r *Renderer) RenderSMF(song *generator.Song) ([]byte, error) {
	if song == nil {
		return nil, errors.New("nil song")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(r.ticksPerQuarter)

	melody := r.eventTrack(song, trackMeta{
		name:    fmt.Sprintf("Melody %s", song.Seed),
		channel: 0,
		program: song.MelodyProgram,
		first:   true,
	}, song.MelodyLine())

	chords := r.chordTrack(song, trackMeta{
		name:    "Chords",
		channel: 1,
		program: song.ChordProgram,
	})

	bass := r.eventTrack(song, trackMeta{
		name:    "Bass",
		channel: 2,
		program: song.BassProgram,
	}, song.BassLine())

	for _, track := range []smf.Track{melody, chords, bass} {
		if err := s.Add(track); err != nil {
			return nil, fmt.Errorf("failed to add track: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the song and writes it to a file.
func (r *Renderer) WriteFile(song *generator.Song, filename string) error {
	data, err := r.RenderSMF(song)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

type trackMeta struct {
	name    string
	channel uint8
	program int
	// first marks the track carrying the tempo and time signature
	first bool
}

func (r *Renderer) tick(beats theory.Beats) uint32 {
	return uint32(math.Round(float64(beats) * float64(r.ticksPerQuarter)))
}

func (r *Renderer) trackHeader(song *generator.Song, meta trackMeta) smf.Track {
	var track smf.Track
	if meta.first {
		// Tempo meta event (FF 51 03, microseconds per beat)
		microsecondsPerBeat := uint32(60000000 / song.Tempo)
		track.Add(0, smf.Message([]byte{
			0xFF, 0x51, 0x03,
			byte(microsecondsPerBeat >> 16),
			byte(microsecondsPerBeat >> 8),
			byte(microsecondsPerBeat),
		}))
		// Time signature meta event; denominator 2 means quarter notes
		track.Add(0, smf.Message([]byte{
			0xFF, 0x58, 0x04, byte(song.BeatsPerMeasure), 0x02, 0x18, 0x08,
		}))
	}
	track.Add(0, metaText(0x03, meta.name))
	track.Add(0, midi.ProgramChange(meta.channel, uint8(meta.program)))
	return track
}

// metaText builds a text-family meta message (0x03 track name, 0x01
// plain text).
func metaText(kind byte, text string) smf.Message {
	data := []byte{0xFF, kind, byte(len(text))}
	return smf.Message(append(data, text...))
}

// eventTrack lays a melody or bass line onto one track. Rests advance
// the cursor without emitting anything.
func (r *Renderer) eventTrack(song *generator.Song, meta trackMeta, events []theory.Event) smf.Track {
	track := r.trackHeader(song, meta)

	var cursor theory.Beats
	var lastTick uint32
	for _, ev := range events {
		if note, ok := ev.(theory.Note); ok {
			on := r.tick(cursor)
			off := r.tick(cursor + note.Duration)
			track.Add(on-lastTick, midi.NoteOn(meta.channel, uint8(note.Pitch), uint8(note.Velocity)))
			track.Add(off-on, midi.NoteOff(meta.channel, uint8(note.Pitch)))
			lastTick = off
		}
		cursor += ev.EventDuration()
	}

	track.Close(0)
	return track
}

// chordTrack lays every chord of the song onto one track as block
// voicings, each labeled with a text event naming the chord.
func (r *Renderer) chordTrack(song *generator.Song, meta trackMeta) smf.Track {
	track := r.trackHeader(song, meta)

	var cursor theory.Beats
	var lastTick uint32
	for _, chord := range song.ChordLine() {
		on := r.tick(cursor)
		off := r.tick(cursor + chord.Duration)
		notes := chord.Spread(true)

		track.Add(on-lastTick, metaText(0x01, chord.Name()))
		for _, note := range notes {
			track.Add(0, midi.NoteOn(meta.channel, uint8(note.Pitch), uint8(note.Velocity)))
		}
		for i, note := range notes {
			delta := uint32(0)
			if i == 0 {
				delta = off - on
			}
			track.Add(delta, midi.NoteOff(meta.channel, uint8(note.Pitch)))
		}
		lastTick = off
		cursor += chord.Duration
	}

	track.Close(0)
	return track
}
