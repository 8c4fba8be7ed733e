// Package sample writes note lists out as Standard MIDI Files and cuts
// short excerpts out of existing ones.
package sample

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/fifths/list"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/util"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 96

// FromNotes builds a one track file that plays every note of src for a
// quarter, one after another. Entries that are not notes within the midi key
// range are skipped.
func FromNotes(src any, velocity uint8) (*smf.SMF, error) {
	var tr smf.Track
	for _, p := range list.Pitches(src) {
		ons := midi.NoteOns(0, velocity, p)
		if len(ons) == 0 {
			continue
		}
		var channel, key, vel uint8
		ons[0].GetNoteOn(&channel, &key, &vel)
		tr.Add(0, ons[0])
		tr.Add(TicksPerQuarter, gomidi.NoteOff(channel, key))
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("error building midi file: %w", err)
	}
	return s, nil
}

// Excerpt copies every track of mf from ticksOffset on, stopping a track
// after maxNotes note on or off events, or never when maxNotes <= 0. Other
// events before the offset are kept at the start so tempo and program
// changes still apply.
func Excerpt(mf *smf.SMF, ticksOffset int64, maxNotes int) *smf.SMF {
	res := smf.New()
	logger.Debug("cutting excerpt", logger.Fields{"tracks": len(mf.Tracks), "from": ticksOffset})
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastTicks int64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			if absTicks < ticksOffset {
				if evt.Message.Is(gomidi.NoteOnMsg) || evt.Message.Is(gomidi.NoteOffMsg) {
					continue
				}
				newTrack = append(newTrack, smf.Event{Delta: 0, Message: evt.Message})
				continue
			}
			if isEndOfTrack(evt.Message) {
				break
			}

			rel := absTicks - util.Max(lastTicks, ticksOffset)
			lastTicks = absTicks
			newTrack = append(newTrack, smf.Event{Delta: uint32(rel), Message: evt.Message})

			switch {
			case evt.Message.Is(gomidi.NoteOnMsg),
				evt.Message.Is(gomidi.NoteOffMsg):
				numNoteOnOff += 1
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
			}
		}
		newTrack.Close(0)
		if err := res.Add(newTrack); err != nil {
			logger.Warn("dropped excerpt track", logger.Fields{"error": err})
		}
	}

	return res
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

func Write(s *smf.SMF, w io.Writer) error {
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing midi file: %w", err)
	}
	return nil
}

func WriteFile(s *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating midi file: %w", err)
	}
	defer f.Close()
	return Write(s, f)
}
