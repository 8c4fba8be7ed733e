package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteRoundTrip(t *testing.T) {
	for step := 0; step <= 6; step++ {
		for alt := -4; alt <= 4; alt++ {
			for oct := -2; oct <= 8; oct++ {
				p, ok := NewNote(step, alt, oct)
				if !ok {
					t.Fatalf("NewNote(%d, %d, %d) failed", step, alt, oct)
				}
				want := Decoded{Kind: Note, Step: step, Alt: alt, Oct: oct}
				if got := Decode(p); got != want {
					t.Errorf("Decode(NewNote(%d, %d, %d)) = %+v", step, alt, oct, got)
				}
				back, _ := Encode(Decode(p))
				if back != p {
					t.Errorf("Encode(Decode(%v)) = %v", p, back)
				}
			}
		}
	}
}

func TestClassRoundTrip(t *testing.T) {
	for step := 0; step <= 6; step++ {
		for alt := -6; alt <= 6; alt++ {
			p, ok := Class(step, alt)
			assert.True(t, ok)
			assert.Equal(t, Decoded{Kind: PitchClass, Step: step, Alt: alt}, Decode(p))
		}
	}
}

func TestIntervalRoundTrip(t *testing.T) {
	for _, dir := range []int{1, -1} {
		for step := 0; step <= 6; step++ {
			for alt := -2; alt <= 2; alt++ {
				for oct := 0; oct <= 3; oct++ {
					name := fmt.Sprintf("step=%d alt=%d oct=%d dir=%d", step, alt, oct, dir)
					t.Run(name, func(t *testing.T) {
						p, ok := NewInterval(step, alt, oct, dir)
						assert.True(t, ok)
						assert.Equal(t, dir, p.Dir)
						assert.Equal(t, Decoded{Kind: Interval, Step: step, Alt: alt, Oct: oct, Dir: dir}, Decode(p))
					})
				}
			}
		}
	}
}

func TestEncodeRejectsBadStep(t *testing.T) {
	assert := assert.New(t)
	_, ok := Class(7, 0)
	assert.False(ok)
	_, ok = NewNote(-1, 0, 4)
	assert.False(ok)
	_, ok = Encode(Decoded{Kind: Interval, Step: 9, Dir: 1})
	assert.False(ok)
	_, ok = Encode(Decoded{Kind: Invalid})
	assert.False(ok)
}

func TestKnownCoordinates(t *testing.T) {
	assert := assert.New(t)

	c4, _ := NewNote(0, 0, 4)
	assert.Equal(Pitch{Kind: Note, Fifths: 0, Octave: 4}, c4)
	assert.Equal(48, c4.Height())

	a4, _ := NewNote(5, 0, 4)
	assert.Equal(Pitch{Kind: Note, Fifths: 3, Octave: 3}, a4)
	assert.Equal(57, a4.Height())

	fs, _ := Class(3, 1)
	assert.Equal(6, fs.Fifths)
	assert.Equal(6, fs.Chroma())

	bb, _ := Class(6, -1)
	assert.Equal(-2, bb.Fifths)
	assert.Equal(10, bb.Chroma())
}

func TestIntervalDirectionDefaultsToAscending(t *testing.T) {
	p, ok := NewInterval(4, 0, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, Pitch{Kind: Interval, Fifths: 1, Octave: 0, Dir: 1}, p)
	assert.Equal(t, 7, p.Height())

	down, _ := NewInterval(4, 0, 0, -5)
	assert.Equal(t, Pitch{Kind: Interval, Fifths: -1, Octave: 0, Dir: -1}, down)
	assert.Equal(t, -7, down.Height())
}

func TestDecodeStoredDescendingInterval(t *testing.T) {
	// a descending major third lands on Ab-1 from C0
	p, _ := NewInterval(2, 0, 0, -1)
	assert.Equal(t, Decoded{Kind: Interval, Step: 5, Alt: -1, Oct: -1, Dir: -1}, DecodeStored(p))
}

func TestValid(t *testing.T) {
	assert := assert.New(t)
	assert.False(Pitch{}.Valid())
	assert.False(Pitch{Kind: Interval}.Valid())
	assert.True(Pitch{Kind: Interval, Dir: -1}.Valid())
	assert.True(Pitch{Kind: PitchClass, Fifths: 99}.Valid())
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("[3]", Pitch{Kind: PitchClass, Fifths: 3}.String())
	assert.Equal("[0 4]", Pitch{Kind: Note, Octave: 4}.String())
	assert.Equal("[-1 0 -1]", Pitch{Kind: Interval, Fifths: -1, Dir: -1}.String())
	assert.Equal("note", Note.String())
}

func TestTuple(t *testing.T) {
	assert := assert.New(t)

	for _, p := range []Pitch{
		{Kind: PitchClass, Fifths: -3},
		{Kind: Note, Fifths: 2, Octave: 3},
		{Kind: Interval, Fifths: -1, Octave: 0, Dir: -1},
	} {
		back, ok := FromTuple(p.Tuple())
		assert.True(ok)
		assert.Equal(p, back)
	}

	_, ok := FromTuple(nil)
	assert.False(ok)
	_, ok = FromTuple([]int{1, 2, 0})
	assert.False(ok)
	_, ok = FromTuple([]int{1, 2, 3, 4})
	assert.False(ok)
	assert.Nil(Pitch{}.Tuple())
}
