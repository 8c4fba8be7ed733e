package list

import (
	"fmt"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/transpose"
	"github.com/jsphweid/fifths/util"
)

const (
	Up   = 1
	Down = -1
)

// ForceDirection moves every entry after the first by whole octaves until
// the sequence strictly rises (direction Up) or falls (Down). Pitch classes
// are placed in the octave of the entry before them. Unparsable entries are
// dropped. Any other direction panics.
func ForceDirection(src any, direction int) []string {
	return Strings(ForceDirectionPitches(Pitches(src), direction))
}

func ForceDirectionPitches(ps []pitch.Pitch, direction int) []pitch.Pitch {
	if direction != Up && direction != Down {
		panic(fmt.Sprintf("direction must be %d or %d, got %d", Up, Down, direction))
	}
	if len(ps) == 0 {
		return nil
	}

	res := []pitch.Pitch{ps[0]}
	prev := ps[0]
	for _, p := range ps[1:] {
		if p.IsClass() {
			p = place(p, octaveOf(prev))
		}
		prevHeight := placedHeight(prev)
		shift := octaveShift(p.Height(), prevHeight, direction)
		if shift != 0 {
			p = transpose.By(transpose.Octaves(shift), p)
		}
		res = append(res, p)
		prev = p
	}
	return res
}

// octaveShift is the smallest number of octaves that puts h strictly above
// (or below) prev.
func octaveShift(h, prev, direction int) int {
	if direction == Up {
		if h > prev {
			return 0
		}
		return util.FloorDiv(prev-h, 12) + 1
	}
	if h < prev {
		return 0
	}
	return -(util.FloorDiv(h-prev, 12) + 1)
}

func octaveOf(p pitch.Pitch) int {
	if p.IsClass() {
		return constants.GetDefaultOctave()
	}
	return pitch.Decode(p).Oct
}

func place(class pitch.Pitch, oct int) pitch.Pitch {
	d := pitch.Decode(class)
	n, _ := pitch.NewNote(d.Step, d.Alt, oct)
	return n
}

func placedHeight(p pitch.Pitch) int {
	if p.IsClass() {
		return place(p, octaveOf(p)).Height()
	}
	return p.Height()
}
