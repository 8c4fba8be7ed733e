// Package render turns encoded pitches back into scientific pitch notation
// and interval names.
package render

import (
	"strconv"

	"github.com/jsphweid/fifths/notation"
	"github.com/jsphweid/fifths/pitch"
)

// Note renders pitch classes and notes, e.g. "C#4", "Bb". Intervals are
// rejected.
func Note(p pitch.Pitch) (string, bool) {
	if !p.Valid() || p.IsInterval() {
		return "", false
	}
	d := pitch.Decode(p)
	s := string(notation.Letters[d.Step]) + notation.Accidentals(d.Alt)
	if p.IsNote() {
		s += strconv.Itoa(d.Oct)
	}
	return s, true
}

// Interval renders intervals number first, e.g. "3M", "-5P", "11AA".
func Interval(p pitch.Pitch) (string, bool) {
	if !p.Valid() || !p.IsInterval() {
		return "", false
	}

	// the stored coordinates of a descending interval point below C0, so
	// number and alteration are mirrored back
	d := pitch.DecodeStored(p)
	num := d.Step + 1 + 7*d.Oct
	alt := d.Alt
	if d.Dir == -1 {
		num = (8 - d.Step) - 7*(d.Oct+1)
		if notation.IsPerfectClass(d.Step + 1) {
			alt = -d.Alt
		} else {
			alt = -(d.Alt + 1)
		}
	}
	return strconv.Itoa(d.Dir*num) + notation.QualityGlyph(num, alt), true
}

// Pitch renders any kind of pitch.
func Pitch(p pitch.Pitch) (string, bool) {
	if p.IsInterval() {
		return Interval(p)
	}
	return Note(p)
}

// String renders p, or returns "" when it is invalid.
func String(p pitch.Pitch) string {
	s, _ := Pitch(p)
	return s
}
