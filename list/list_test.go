package list

import (
	"testing"

	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/transpose"
	"github.com/stretchr/testify/assert"
)

func TestListify(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]any{"C4", "E4", "G4"}, Listify("C4 E4,G4 | "))
	assert.Equal([]any{"C4", "D4"}, Listify([]string{"C4", "D4"}))
	assert.Equal([]any{}, Listify(nil))
	assert.Equal([]any{}, Listify(""))
	assert.Equal([]any{60}, Listify(60))
	assert.Equal([]any{[]int{0, 4}}, Listify([]int{0, 4}))
	assert.Len(Listify([][]int{{0, 4}, {1}}), 2)

	in := []any{"C4", 3}
	assert.Equal(in, Listify(in))
}

func TestPitchesDropsInvalid(t *testing.T) {
	ps := Pitches("C4 H9 M3 F#")
	assert.Len(t, ps, 3)
	assert.Equal(t, []string{"C4", "3M", "F#"}, Strings(ps))
}

func TestMap(t *testing.T) {
	up := transpose.With("P8")
	octaveUp := func(p pitch.Pitch) (pitch.Pitch, bool) {
		return up.Pitch(p)
	}
	got := Map(octaveUp, "C4 D4 nope E")
	assert.Equal(t, []string{"C5", "D5", "E"}, got)

	// two intervals don't transpose, so M3 is left out
	got = Map(octaveUp, "M3 C4")
	assert.Equal(t, []string{"C5"}, got)
}

func TestFilter(t *testing.T) {
	got := Filter(func(p pitch.Pitch) bool { return p.IsNote() }, "C4 E M3 G4 H9")
	assert.Equal(t, []string{"C4", "G4"}, got)
}

func TestReduce(t *testing.T) {
	total := Reduce(func(acc int, p pitch.Pitch) int {
		return acc + p.Height()
	}, 0, "M3 m3 x")
	assert.Equal(t, 7, total)

	highest := Reduce(func(acc pitch.Pitch, p pitch.Pitch) pitch.Pitch {
		if acc.Kind == pitch.Invalid || p.Height() > acc.Height() {
			return p
		}
		return acc
	}, pitch.Pitch{}, []string{"C4", "G5", "D3"})
	assert.Equal(t, 67, highest.Height())
}

func TestHarmonize(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C4", "E4", "G4"}, Harmonize("1P 3M 5P", "C4"))
	assert.Equal([]string{"E4", "G#4", "B"}, Harmonize("C4 E4 G", "M3"))
	assert.Equal([]string{"D", "F#"}, Harmonize("1P H9 3M", "D"))
	assert.Empty(Harmonize("C4 E4", "H9"))
}

func TestSort(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C3", "C4", "C5"}, Sort(Ascending, []string{"C4", "C3", "C5"}))
	assert.Equal([]string{"C5", "C4", "C3"}, Sort(Descending, "C4 C3 C5"))
}

func TestSortPlacesUnparsableFirstAndClassesByScore(t *testing.T) {
	got := Sort(Ascending, "E4 F H9 C B2")
	// C scores -10 and F -9, both below B2 at 35
	assert.Equal(t, []string{"H9", "C", "F", "B2", "E4"}, got)
}

func TestSortIsStable(t *testing.T) {
	got := Sort(Ascending, "C#4 Db4 B#3")
	assert.Equal(t, []string{"B#3", "C#4", "Db4"}, got)
}

func TestItemScore(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-10.0, NewItem("C").Score())
	assert.Equal(-11.0, NewItem("D").Score())
	assert.Equal(-8.0, NewItem("Bb").Score())
	assert.Equal(48.0, NewItem("C4").Score())
	assert.Equal("42", NewItem(42).String())
}

func TestForceDirectionUp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C4", "G4", "E5"}, ForceDirection([]string{"C4", "G3", "E5"}, Up))
	assert.Equal([]string{"C4", "C5", "C6"}, ForceDirection("C4 C4 C4", Up))
	assert.Equal([]string{"G4", "A4", "C5", "E5"}, ForceDirection("G4 A C E", Up))
	assert.Equal([]string{"C2", "D2"}, ForceDirection("C2 D-3", Up))
}

func TestForceDirectionDown(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C4", "G3", "E3"}, ForceDirection([]string{"C4", "G3", "E5"}, Down))
	assert.Equal([]string{"E5", "C5", "A4", "F4"}, ForceDirection("E5 C A F", Down))
	assert.Equal([]string{"C4", "B#2"}, ForceDirection("C4 B#3", Down))
}

func TestForceDirectionIsStrictlyMonotonic(t *testing.T) {
	src := "C4 G3 E5 D1 F#7 Bb C A2 Ebb4"
	for _, dir := range []int{Up, Down} {
		ps := ForceDirectionPitches(Pitches(src), dir)
		assert.Len(t, ps, 9)
		for i := 1; i < len(ps); i++ {
			if dir == Up {
				assert.Greater(t, ps[i].Height(), ps[i-1].Height(), "%d", i)
			} else {
				assert.Less(t, ps[i].Height(), ps[i-1].Height(), "%d", i)
			}
		}
	}
}

func TestForceDirectionKeepsFirst(t *testing.T) {
	assert.Equal(t, []string{"F#"}, ForceDirection("F#", Up))
	assert.Empty(t, ForceDirection("", Down))
}

func TestForceDirectionPanicsOnBadDirection(t *testing.T) {
	assert.Panics(t, func() { ForceDirection("C4 D4", 0) })
	assert.Panics(t, func() { ForceDirection("C4 D4", 2) })
}
