package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/fifths/logger"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = fmt.Errorf("error parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	if res == nil {
		return nil, errors.New("error parsing midi file: no data")
	}
	logger.Debug("read midi file", logger.Fields{"tracks": len(res.Tracks)})
	return res, nil
}

// KeyEvent is a note on or off at an absolute tick position.
type KeyEvent struct {
	Ticks     int64
	IsNoteOff bool
	Key       uint8
}

// KeyEvents flattens all tracks into note on/off events ordered by tick,
// note offs first on ties. A note on with zero velocity counts as a note
// off.
func KeyEvents(s *smf.SMF) []KeyEvent {
	var events []KeyEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, KeyEvent{Ticks: absTicks, IsNoteOff: velocity == 0, Key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, KeyEvent{Ticks: absTicks, IsNoteOff: true, Key: key})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Ticks != events[j].Ticks {
			return events[i].Ticks < events[j].Ticks
		}
		return events[i].IsNoteOff && !events[j].IsNoteOff
	})
	return events
}

// NoteOnKeys lists the keys of every note on, in time order.
func NoteOnKeys(s *smf.SMF) []uint8 {
	var keys []uint8
	for _, evt := range KeyEvents(s) {
		if !evt.IsNoteOff {
			keys = append(keys, evt.Key)
		}
	}
	return keys
}

// ReadNotes names every note on of a midi file.
func ReadNotes(filepath string, useSharps bool) ([]string, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	name := ChromaticScale(useSharps)
	var res []string
	for _, key := range NoteOnKeys(s) {
		res = append(res, name(int(key)))
	}
	return res, nil
}
