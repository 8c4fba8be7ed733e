package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fifths/chord"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/midi"
	"github.com/jsphweid/fifths/sample"
	"github.com/spf13/cobra"
)

var (
	velocity    uint8
	excerptFrom int64
	excerptMax  int
)

func init() {
	notesCmd.Flags().BoolVar(&useFlats, "flats", false, "spell black keys with flats")
	chordsCmd.Flags().BoolVar(&useFlats, "flats", false, "spell black keys with flats")
	writeCmd.Flags().Uint8Var(&velocity, "velocity", 100, "note on velocity")
	excerptCmd.Flags().Int64Var(&excerptFrom, "from", 0, "tick to start at")
	excerptCmd.Flags().IntVar(&excerptMax, "max", 10, "note on/off events per track, 0 for all")
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(excerptCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <file.mid>",
	Short: "Lists the notes of a midi file in the order they start",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := midi.ReadNotes(args[0], !useFlats)
		if err != nil {
			logger.Error("could not read notes", err, logger.Fields{"path": args[0]})
			return err
		}
		printLine(cmd, strings.Join(notes, " "))
		return nil
	},
}

var chordsCmd = &cobra.Command{
	Use:   "chords <file.mid>",
	Short: "Lists the notes sounding together after every change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			logger.Error("could not read chords", err, logger.Fields{"path": args[0]})
			return err
		}
		for _, c := range chord.GetChords(s) {
			names := chord.Names(c, !useFlats)
			printLine(cmd, fmt.Sprintf("%d\t%dms\t%s", c.Ticks, c.Offset, strings.Join(names, " ")))
		}
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:     "write <out.mid> <note>...",
	Short:   "Writes notes to a midi file, a quarter note each",
	Example: "  fifths write scale.mid C4 D4 E4 F4 G4",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := sample.FromNotes(joinArgs(args[1:]), velocity)
		if err != nil {
			return err
		}
		if err := sample.WriteFile(s, args[0]); err != nil {
			logger.Error("could not write midi file", err, logger.Fields{"path": args[0]})
			return err
		}
		return nil
	},
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt <in.mid> <out.mid>",
	Short: "Cuts the start of a midi file from a tick on",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			logger.Error("could not read midi file", err, logger.Fields{"path": args[0]})
			return err
		}
		if err := sample.WriteFile(sample.Excerpt(s, excerptFrom, excerptMax), args[1]); err != nil {
			logger.Error("could not write midi file", err, logger.Fields{"path": args[1]})
			return err
		}
		return nil
	},
}
