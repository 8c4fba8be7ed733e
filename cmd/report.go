package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/chord"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/render"
	"github.com/jsphweid/fifths/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

func init() {
	reportCmd.Flags().BoolVar(&useFlats, "flats", false, "spell black keys with flats")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file.mid>",
	Short: "Creates a pitch class report of a midi file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			logger.Error("could not create report", err, logger.Fields{"path": args[0]})
			return err
		}
		r := analyze(s, !useFlats)
		printReport(cmd, r)
		return nil
	},
}

type midiReport struct {
	// note ons per chroma, 0 is C
	counts    map[int]int64
	names     map[int]string
	numChords int
	distinct  int
}

func analyze(s *smf.SMF, useSharps bool) midiReport {
	r := midiReport{counts: make(map[int]int64), names: make(map[int]string)}
	for _, key := range midi.NoteOnKeys(s) {
		note := midi.KeyToPitch(int(key), useSharps)
		d := pitch.Decode(note)
		class, _ := pitch.Class(d.Step, d.Alt)
		r.counts[note.Chroma()] += 1
		r.names[note.Chroma()] = render.String(class)
	}

	seen := make(map[string]bool)
	for _, c := range chord.GetChords(s) {
		r.numChords += 1
		seen[chord.CreateChordKey(c.Notes)] = true
	}
	r.distinct = len(seen)
	return r
}

func printReport(cmd *cobra.Command, r midiReport) {
	chromas := util.GetKeys(r.counts)
	counts := make([]int64, 0, len(chromas))
	for _, chroma := range chromas {
		counts = append(counts, r.counts[chroma])
	}
	total := util.Sum(counts)

	printLine(cmd, fmt.Sprintf("notes: %v", total))
	for _, chroma := range chromas {
		share := float64(r.counts[chroma]) / float64(total) * 100
		printLine(cmd, fmt.Sprintf("%-3s %v\t%.1f%%", r.names[chroma], r.counts[chroma], share))
	}
	printLine(cmd, fmt.Sprintf("chords: %v", r.numChords))
	printLine(cmd, fmt.Sprintf("distinct chords: %v", r.distinct))
}
