package midi

import (
	"math"
	"strconv"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/parse"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/util"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Height is the signed semitone count from C0 of any pitch; for intervals
// it is the direction-aware size.
func Height(v any) (int, bool) {
	p, ok := parse.Expect(v)
	if !ok {
		return 0, false
	}
	return p.Height(), true
}

// Semitones is the signed semitone size of an interval.
func Semitones(v any) (int, bool) {
	p, ok := parse.Expect(v)
	if !ok || !p.IsInterval() {
		return 0, false
	}
	return p.Height(), true
}

// ToMidi returns the midi number of a note (C4 is 60). Plain integers in
// 1-128 are taken to be midi numbers already.
func ToMidi(v any) (int, bool) {
	if n, ok := asInt(v); ok {
		if n >= 1 && n <= 128 {
			return n, true
		}
		return 0, false
	}
	p, ok := parse.Expect(v)
	if !ok || !p.IsNote() {
		return 0, false
	}
	return p.Height() + 12, true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	}
	return 0, false
}

var naturals = map[int]string{0: "C", 2: "D", 4: "E", 5: "F", 7: "G", 9: "A", 11: "B"}

// ChromaticScale returns a namer for midi numbers. Black keys are spelled
// as the sharp of the step below, or the flat of the step above.
func ChromaticScale(useSharps bool) func(midi int) string {
	return func(midi int) string {
		chroma := util.Mod(midi, 12)
		name, natural := naturals[chroma]
		if !natural {
			if useSharps {
				name = naturals[chroma-1] + "#"
			} else {
				name = naturals[chroma+1] + "b"
			}
		}
		return name + strconv.Itoa(util.FloorDiv(midi, 12)-1)
	}
}

// FromMidi names a midi number, e.g. 61 is "Db4" or "C#4".
func FromMidi(midi int, useSharps bool) string {
	return ChromaticScale(useSharps)(midi)
}

// WellTemperedFrequency returns an equal-tempered tuning with A4 at
// referenceHz. It panics if referenceHz is not positive.
func WellTemperedFrequency(referenceHz float64) func(v any) (float64, bool) {
	if referenceHz <= 0 || math.IsNaN(referenceHz) || math.IsInf(referenceHz, 0) {
		panic("reference frequency must be a positive number, got " + strconv.FormatFloat(referenceHz, 'f', -1, 64))
	}
	return func(v any) (float64, bool) {
		m, ok := ToMidi(v)
		if !ok {
			return 0, false
		}
		return referenceHz * math.Pow(2, float64(m-constants.ReferenceMidi)/12), true
	}
}

var standard = WellTemperedFrequency(constants.StandardReferenceHz)

// ToFreq uses standard tuning, A4 = 440Hz.
func ToFreq(v any) (float64, bool) {
	return standard(v)
}

// NoteOns converts notes to note-on messages, skipping anything that is
// not a note in the 0-127 key range.
func NoteOns(channel, velocity uint8, notes ...any) []gomidi.Message {
	var res []gomidi.Message
	for _, n := range notes {
		p, ok := parse.Expect(n)
		if !ok || !p.IsNote() {
			continue
		}
		key := p.Height() + 12
		if key < 0 || key > 127 {
			continue
		}
		res = append(res, gomidi.NoteOn(channel, uint8(key), velocity))
	}
	return res
}

// KeyToPitch encodes a midi key as a note, spelled like ChromaticScale.
func KeyToPitch(key int, useSharps bool) pitch.Pitch {
	p, _ := parse.Note(FromMidi(key, useSharps))
	return p
}
