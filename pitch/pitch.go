// Package pitch encodes notes, pitch classes and intervals as coordinates on
// the line of fifths.
//
// A pitch is stored as a fifths coordinate (each unit is a perfect fifth
// above C) plus, for notes and intervals, an octave component chosen so that
// Encode and Decode are exact inverses for every accidental and octave.
package pitch

import (
	"fmt"

	"github.com/jsphweid/fifths/util"
)

type Kind uint8

const (
	Invalid Kind = iota
	PitchClass
	Note
	Interval
)

func (k Kind) String() string {
	switch k {
	case PitchClass:
		return "pitch class"
	case Note:
		return "note"
	case Interval:
		return "interval"
	}
	return "invalid"
}

// Pitch is an immutable encoded pitch. Octave is unused for pitch classes and
// Dir is only meaningful (and always ±1) for intervals.
type Pitch struct {
	Kind   Kind
	Fifths int
	Octave int
	Dir    int
}

// Decoded is the letter/accidental/octave form of a Pitch.
type Decoded struct {
	Kind Kind
	Step int // 0-6, C..B
	Alt  int // sharps when positive, flats when negative
	Oct  int // not meaningful for pitch classes
	Dir  int // 0 unless Kind is Interval
}

// stepFifths holds the fifths coordinate of each natural letter, C D E F G A B.
var stepFifths = [7]int{0, 2, 4, -1, 1, 3, 5}

// stepOcts is the octave span each natural letter contributes.
var stepOcts = [7]int{0, 1, 2, -1, 0, 1, 2}

// fifthSteps inverts stepFifths modulo 7, indexed by (fifths+1) mod 7.
var fifthSteps = [7]int{3, 0, 4, 1, 5, 2, 6}

func init() {
	for i, f := range stepFifths {
		if stepOcts[i] != util.FloorDiv(f*7, 12) {
			panic(fmt.Sprintf("stepOcts[%d] out of sync with stepFifths", i))
		}
	}
}

func ValidStep(step int) bool {
	return step >= 0 && step <= 6
}

// Class encodes a pitch class.
func Class(step, alt int) (Pitch, bool) {
	if !ValidStep(step) {
		return Pitch{}, false
	}
	return Pitch{Kind: PitchClass, Fifths: stepFifths[step] + 7*alt}, true
}

// NewNote encodes a note with an absolute octave (C4 is middle C).
func NewNote(step, alt, oct int) (Pitch, bool) {
	p, ok := Class(step, alt)
	if !ok {
		return Pitch{}, false
	}
	p.Kind = Note
	p.Octave = oct - stepOcts[step] - 4*alt
	return p, true
}

// NewInterval encodes an interval spanning step diatonic steps plus oct
// octaves. Only the sign of dir is used; zero means ascending.
func NewInterval(step, alt, oct, dir int) (Pitch, bool) {
	p, ok := NewNote(step, alt, oct)
	if !ok {
		return Pitch{}, false
	}
	d := util.Sign(dir)
	return Pitch{Kind: Interval, Fifths: d * p.Fifths, Octave: d * p.Octave, Dir: d}, true
}

// Encode dispatches on d.Kind.
func Encode(d Decoded) (Pitch, bool) {
	switch d.Kind {
	case PitchClass:
		return Class(d.Step, d.Alt)
	case Note:
		return NewNote(d.Step, d.Alt, d.Oct)
	case Interval:
		return NewInterval(d.Step, d.Alt, d.Oct, d.Dir)
	}
	return Pitch{}, false
}

// Decode is the inverse of Encode: for every valid Decoded d,
// Decode(Encode(d)) == d, including descending intervals.
func Decode(p Pitch) Decoded {
	if p.Kind != Interval {
		return DecodeStored(p)
	}
	d := DecodeStored(Pitch{Kind: Note, Fifths: p.Dir * p.Fifths, Octave: p.Dir * p.Octave})
	d.Kind = Interval
	d.Dir = p.Dir
	return d
}

// DecodeStored decodes the stored coordinates as they are. For a descending
// interval that is the note the interval reaches going down from C0, e.g.
// -3M decodes to Ab-1.
func DecodeStored(p Pitch) Decoded {
	step := fifthSteps[util.Mod(p.Fifths+1, 7)]
	d := Decoded{
		Kind: p.Kind,
		Step: step,
		Alt:  util.FloorDiv(p.Fifths+1, 7),
	}
	switch p.Kind {
	case Note, Interval:
		d.Oct = p.Octave + 4*d.Alt + stepOcts[step]
	}
	if p.Kind == Interval {
		d.Dir = p.Dir
	}
	return d
}

func (p Pitch) Valid() bool {
	switch p.Kind {
	case PitchClass, Note:
		return true
	case Interval:
		return p.Dir == 1 || p.Dir == -1
	}
	return false
}

func (p Pitch) IsClass() bool    { return p.Kind == PitchClass }
func (p Pitch) IsNote() bool     { return p.Kind == Note }
func (p Pitch) IsInterval() bool { return p.Kind == Interval }

// HasOctave reports whether p carries an absolute or relative octave.
func (p Pitch) HasOctave() bool {
	return p.Kind == Note || p.Kind == Interval
}

// Height is the signed semitone count from C0. For intervals it is the
// direction-aware semitone size.
func (p Pitch) Height() int {
	return p.Fifths*7 + 12*p.Octave
}

// Chroma is the semitone position within an octave, 0-11.
func (p Pitch) Chroma() int {
	return util.Mod(p.Fifths*7, 12)
}

// String prints the encoded tuple, for debugging.
func (p Pitch) String() string {
	switch p.Kind {
	case PitchClass:
		return fmt.Sprintf("[%d]", p.Fifths)
	case Note:
		return fmt.Sprintf("[%d %d]", p.Fifths, p.Octave)
	case Interval:
		return fmt.Sprintf("[%d %d %d]", p.Fifths, p.Octave, p.Dir)
	}
	return "[]"
}

// Tuple returns the raw 1-3 integer form: [fifths], [fifths octave] or
// [fifths octave dir].
func (p Pitch) Tuple() []int {
	switch p.Kind {
	case PitchClass:
		return []int{p.Fifths}
	case Note:
		return []int{p.Fifths, p.Octave}
	case Interval:
		return []int{p.Fifths, p.Octave, p.Dir}
	}
	return nil
}

// FromTuple is the inverse of Tuple. The tuple length picks the kind.
func FromTuple(t []int) (Pitch, bool) {
	switch len(t) {
	case 1:
		return Pitch{Kind: PitchClass, Fifths: t[0]}, true
	case 2:
		return Pitch{Kind: Note, Fifths: t[0], Octave: t[1]}, true
	case 3:
		if t[2] != 1 && t[2] != -1 {
			return Pitch{}, false
		}
		return Pitch{Kind: Interval, Fifths: t[0], Octave: t[1], Dir: t[2]}, true
	}
	return Pitch{}, false
}
