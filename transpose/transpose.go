// Package transpose adds intervals to pitch classes, notes and other
// intervals.
package transpose

import (
	"github.com/jsphweid/fifths/parse"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/render"
	"github.com/jsphweid/fifths/util"
)

// By moves subject by interval. Adding two intervals yields an interval
// whose direction follows the sign of the combined size.
func By(interval, subject pitch.Pitch) pitch.Pitch {
	res := pitch.Pitch{Kind: subject.Kind, Fifths: interval.Fifths + subject.Fifths}
	if subject.IsClass() {
		return res
	}
	res.Octave = interval.Octave + subject.Octave
	if subject.IsInterval() {
		res.Dir = util.Sign(7*res.Fifths + 12*res.Octave)
	}
	return res
}

// Pitches transposes with exactly one of a and b being an interval; the
// order of the operands does not matter.
func Pitches(a, b any) (pitch.Pitch, bool) {
	pa, ok := parse.Expect(a)
	if !ok {
		return pitch.Pitch{}, false
	}
	pb, ok := parse.Expect(b)
	if !ok {
		return pitch.Pitch{}, false
	}
	return pair(pa, pb)
}

func pair(a, b pitch.Pitch) (pitch.Pitch, bool) {
	switch {
	case a.IsInterval() && !b.IsInterval():
		return By(a, b), true
	case b.IsInterval() && !a.IsInterval():
		return By(b, a), true
	}
	return pitch.Pitch{}, false
}

// Transpose is Pitches rendered as text, e.g. Transpose("C4", "M3") is "E4".
func Transpose(a, b any) (string, bool) {
	p, ok := Pitches(a, b)
	if !ok {
		return "", false
	}
	return render.Pitch(p)
}

// Transposer is a transposition with one operand already bound.
type Transposer struct {
	bound pitch.Pitch
	ok    bool
}

// With binds a, which may be the interval or the subject.
func With(a any) Transposer {
	p, ok := parse.Expect(a)
	return Transposer{bound: p, ok: ok}
}

func (t Transposer) Pitch(b any) (pitch.Pitch, bool) {
	if !t.ok {
		return pitch.Pitch{}, false
	}
	pb, ok := parse.Expect(b)
	if !ok {
		return pitch.Pitch{}, false
	}
	return pair(t.bound, pb)
}

func (t Transposer) Transpose(b any) (string, bool) {
	p, ok := t.Pitch(b)
	if !ok {
		return "", false
	}
	return render.Pitch(p)
}

// Add sums two intervals, e.g. Add("3M", "3m") is "5P".
func Add(a, b any) (string, bool) {
	pa, ok := parse.Expect(a)
	if !ok || !pa.IsInterval() {
		return "", false
	}
	pb, ok := parse.Expect(b)
	if !ok || !pb.IsInterval() {
		return "", false
	}
	return render.Pitch(By(pa, pb))
}

// Octaves returns the interval spanning n octaves, descending when n < 0.
func Octaves(n int) pitch.Pitch {
	p, _ := pitch.NewInterval(0, 0, util.Abs(n), n)
	return p
}
