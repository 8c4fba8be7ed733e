package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/model"
	"github.com/jsphweid/fifths/util"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

func CreateChordKey(notes []uint8) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

func snapshot(pressed map[uint8]bool) model.Notes {
	return util.GetKeys(pressed)
}

// GetChords returns the keys held after every tick that changes them, in
// time order. Moments where nothing is held are skipped.
func GetChords(s *smf.SMF) []model.Chord {
	var chords []model.Chord

	pressed := make(map[uint8]bool)
	events := midi.KeyEvents(s)
	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Key)
		} else {
			pressed[evt.Key] = true
		}

		// only the last event at a tick settles the chord
		if i+1 < len(events) && events[i+1].Ticks == evt.Ticks {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		chords = append(chords, model.Chord{
			Ticks:  evt.Ticks,
			Offset: uint32(s.TimeAt(evt.Ticks) / 1000),
			Notes:  snapshot(pressed),
		})
	}
	return chords
}

// Names spells the notes of c from low to high.
func Names(c model.Chord, useSharps bool) []string {
	name := midi.ChromaticScale(useSharps)
	res := make([]string, len(c.Notes))
	for i, key := range c.Notes {
		res[i] = name(int(key))
	}
	return res
}
