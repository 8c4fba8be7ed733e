package midi

import (
	"testing"

	"github.com/jsphweid/fifths/pitch"
	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestToMidi(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{"C4", 60},
		{"A4", 69},
		{"C-1", 0},
		{"B#3", 60},
		{"Cb4", 59},
		{"G9", 127},
		{60, 60},
		{uint8(1), 1},
		{128, 128},
		{pitch.Pitch{Kind: pitch.Note, Fifths: 3, Octave: 3}, 69},
	}

	for _, c := range cases {
		got, ok := ToMidi(c.in)
		assert.True(t, ok, "%v", c.in)
		assert.Equal(t, c.want, got, "%v", c.in)
	}
}

func TestToMidiInvalid(t *testing.T) {
	for _, in := range []any{"C", "M3", "H9", 0, 129, -5, nil, 3.5} {
		_, ok := ToMidi(in)
		assert.False(t, ok, "%v", in)
	}
}

func TestSemitones(t *testing.T) {
	assert := assert.New(t)
	for text, want := range map[string]int{"P5": 7, "P8": 12, "M3": 4, "-3m": -3, "9M": 14, "1P": 0, "4A": 6, "5d": 6} {
		got, ok := Semitones(text)
		assert.True(ok)
		assert.Equal(want, got, text)
	}
	_, ok := Semitones("C4")
	assert.False(ok)
}

func TestHeight(t *testing.T) {
	h, ok := Height("C4")
	assert.True(t, ok)
	assert.Equal(t, 48, h)
	h, _ = Height("-5P")
	assert.Equal(t, -7, h)
	_, ok = Height("nope")
	assert.False(t, ok)
}

func TestChromaticScale(t *testing.T) {
	sharps := ChromaticScale(true)
	flats := ChromaticScale(false)

	assert := assert.New(t)
	assert.Equal("C4", sharps(60))
	assert.Equal("C#4", sharps(61))
	assert.Equal("Db4", flats(61))
	assert.Equal("A#4", sharps(70))
	assert.Equal("Bb4", flats(70))
	assert.Equal("B3", flats(59))
	assert.Equal("C-1", flats(0))
	assert.Equal("B-2", flats(-1))
	assert.Equal("Gb-2", flats(-6))
	assert.Equal("F#4", FromMidi(66, true))
}

func TestChromaticScaleRoundTrip(t *testing.T) {
	for _, useSharps := range []bool{true, false} {
		name := ChromaticScale(useSharps)
		for m := 0; m <= 127; m++ {
			got, ok := ToMidi(name(m))
			assert.True(t, ok)
			assert.Equal(t, m, got, name(m))
		}
	}
}

func TestToFreq(t *testing.T) {
	assert := assert.New(t)

	a4, ok := ToFreq("A4")
	assert.True(ok)
	assert.Equal(440.0, a4)

	c4, _ := ToFreq("C4")
	assert.InDelta(261.6255653005986, c4, 1e-9)

	a5, _ := ToFreq(81)
	assert.InDelta(880.0, a5, 1e-9)

	_, ok = ToFreq("C")
	assert.False(ok)
}

func TestWellTemperedFrequency(t *testing.T) {
	baroque := WellTemperedFrequency(415)
	a4, ok := baroque("A4")
	assert.True(t, ok)
	assert.Equal(t, 415.0, a4)

	assert.Panics(t, func() { WellTemperedFrequency(0) })
	assert.Panics(t, func() { WellTemperedFrequency(-440) })
}

func TestNoteOns(t *testing.T) {
	msgs := NoteOns(1, 100, "C4", "M3", "H9", "E4", "C", "C10")
	assert.Equal(t, []gomidi.Message{
		gomidi.NoteOn(1, 60, 100),
		gomidi.NoteOn(1, 64, 100),
	}, msgs)
}

func TestKeyToPitch(t *testing.T) {
	assert.Equal(t, pitch.Pitch{Kind: pitch.Note, Fifths: 0, Octave: 4}, KeyToPitch(60, true))
	assert.Equal(t, -2, KeyToPitch(70, false).Fifths)
	assert.Equal(t, 10, KeyToPitch(70, true).Fifths)
}
