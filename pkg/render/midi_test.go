package render

import (
	"bytes"
	"strings"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/james-see/ripples/pkg/generator"
)

func generateSong(t *testing.T, seed string) *generator.Song {
	t.Helper()
	gen, err := generator.New(generator.DefaultConfig(), seed)
	if err != nil {
		t.Fatal(err)
	}
	song, err := gen.Generate()
	if err != nil {
		t.Fatal(err)
	}
	return song
}

func TestRenderSMFHeader(t *testing.T) {
	song := generateSong(t, "42")
	data, err := New().RenderSMF(song)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || string(data[:4]) != "MThd" {
		t.Error("rendered data does not start with MThd")
	}
}

func TestRenderSMFTracks(t *testing.T) {
	song := generateSong(t, "42")
	data, err := New().RenderSMF(song)
	if err != nil {
		t.Fatal(err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("rendered file does not parse: %v", err)
	}
	if len(s.Tracks) != 3 {
		t.Errorf("rendered file has %d tracks, want 3 (melody, chords, bass)", len(s.Tracks))
	}

	// The first track carries the tempo meta event
	foundTempo := false
	for _, ev := range s.Tracks[0] {
		msg := []byte(ev.Message)
		if len(msg) >= 3 && msg[0] == 0xFF && msg[1] == 0x51 {
			foundTempo = true
			break
		}
	}
	if !foundTempo {
		t.Error("first track has no tempo meta event")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := New().RenderSMF(generateSong(t, "route 66"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New().RenderSMF(generateSong(t, "route 66"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("rendering the same seed twice produced different bytes")
	}
}

func TestRenderNilSong(t *testing.T) {
	if _, err := New().RenderSMF(nil); err == nil {
		t.Error("RenderSMF(nil) should fail")
	}
}

func TestFilename(t *testing.T) {
	name := Filename("42")
	if !strings.HasSuffix(name, "-42.mid") {
		t.Errorf("Filename(\"42\") = %q, want suffix -42.mid", name)
	}
	if !strings.HasPrefix(name, "song-v") {
		t.Errorf("Filename(\"42\") = %q, want prefix song-v", name)
	}
}
