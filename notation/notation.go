// Package notation tokenizes note names ("C#4", "bb", "Fx-1") and interval
// names ("M3", "-5P", "P-8", "AA4") into letter/accidental/octave records.
package notation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/fifths/util"
)

const Letters = "CDEFGAB"

var noteRegex = regexp.MustCompile(`^([a-gA-G])(#+|b+|x+|)(-?\d*)$`)

var intervalRegex = regexp.MustCompile(`^([-+]?)(\d+)(d+|m|M|P|A+)$|^(d+|m|M|P|A+)([-+]?)(\d+)$`)

type NoteName struct {
	Step   int
	Alt    int
	Oct    int
	HasOct bool
}

type IntervalName struct {
	Num  int // compound interval number, always >= 1
	Step int // simple number minus one
	Alt  int
	Oct  int
	Dir  int
}

// ParseNote returns false for anything that isn't a note name.
func ParseNote(text string) (NoteName, bool) {
	m := noteRegex.FindStringSubmatch(text)
	if m == nil {
		return NoteName{}, false
	}

	var n NoteName
	n.Step = strings.Index(Letters, strings.ToUpper(m[1]))
	n.Alt = accidentalAlt(m[2])
	if m[3] != "" {
		oct, err := strconv.Atoi(m[3])
		if err != nil {
			return NoteName{}, false
		}
		n.Oct = oct
		n.HasOct = true
	}
	return n, true
}

func accidentalAlt(acc string) int {
	if acc == "" {
		return 0
	}
	switch acc[0] {
	case '#':
		return len(acc)
	case 'x':
		return 2 * len(acc)
	}
	return -len(acc)
}

// ParseInterval accepts number-first ("3M", "-5P") and quality-first
// ("M3", "P-5") forms.
func ParseInterval(text string) (IntervalName, bool) {
	m := intervalRegex.FindStringSubmatch(text)
	if m == nil {
		return IntervalName{}, false
	}

	sign, digits, quality := m[1], m[2], m[3]
	if digits == "" {
		quality, sign, digits = m[4], m[5], m[6]
	}
	num, err := strconv.Atoi(digits)
	if err != nil || num < 1 {
		return IntervalName{}, false
	}
	alt, ok := QualityAlt(num, quality)
	if !ok {
		return IntervalName{}, false
	}

	dir := 1
	if sign == "-" {
		dir = -1
	}
	return IntervalName{
		Num:  num,
		Step: (num - 1) % 7,
		Alt:  alt,
		Oct:  (num - 1) / 7,
		Dir:  dir,
	}, true
}

// IsPerfectClass reports whether the natural quality of num is P
// (unisons, fourths, fifths and their compounds).
func IsPerfectClass(num int) bool {
	switch util.Mod(util.Abs(num)-1, 7) {
	case 0, 3, 4:
		return true
	}
	return false
}

// QualityAlt converts a quality glyph into an alteration relative to the
// major or perfect interval of the same number.
func QualityAlt(num int, quality string) (int, bool) {
	perfect := IsPerfectClass(num)
	switch {
	case quality == "P":
		return 0, perfect
	case quality == "M":
		return 0, !perfect
	case quality == "m":
		return -1, !perfect
	case strings.Trim(quality, "A") == "" && quality != "":
		return len(quality), true
	case strings.Trim(quality, "d") == "" && quality != "":
		if perfect {
			return -len(quality), true
		}
		return -len(quality) - 1, true
	}
	return 0, false
}

// QualityGlyph is the inverse of QualityAlt.
func QualityGlyph(num, alt int) string {
	perfect := IsPerfectClass(num)
	switch {
	case alt == 0 && perfect:
		return "P"
	case alt == 0:
		return "M"
	case alt == -1 && !perfect:
		return "m"
	case alt > 0:
		return strings.Repeat("A", alt)
	case perfect:
		return strings.Repeat("d", -alt)
	}
	return strings.Repeat("d", -(alt + 1))
}

// Accidentals renders alt as repeated '#' or 'b'.
func Accidentals(alt int) string {
	if alt > 0 {
		return strings.Repeat("#", alt)
	}
	return strings.Repeat("b", -alt)
}
