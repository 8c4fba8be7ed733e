package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/parse"
	"github.com/jsphweid/fifths/pitch"
	"github.com/jsphweid/fifths/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <pitch>",
	Short: "Prints how a pitch is encoded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := parse.Pitch(args[0])
		if !ok {
			return fmt.Errorf("not a note, pitch class or interval: %q", args[0])
		}
		inspect(cmd, p)
		return nil
	},
}

func inspect(cmd *cobra.Command, p pitch.Pitch) {
	d := pitch.Decode(p)
	printLine(cmd, "kind:", p.Kind)
	printLine(cmd, "text:", render.String(p))
	printLine(cmd, "tuple:", p.Tuple())
	printLine(cmd, "step:", d.Step)
	printLine(cmd, "alt:", d.Alt)
	if p.HasOctave() {
		printLine(cmd, "oct:", d.Oct)
		printLine(cmd, "height:", p.Height())
	}
	if p.IsInterval() {
		printLine(cmd, "dir:", d.Dir)
	}
	printLine(cmd, "chroma:", p.Chroma())
}
