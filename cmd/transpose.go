package cmd

import (
	"fmt"

	"github.com/jsphweid/fifths/transpose"
	"github.com/spf13/cobra"
)

var addIntervals bool

func init() {
	transposeCmd.Flags().BoolVar(&addIntervals, "add", false, "add two intervals instead")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <pitch> <pitch>",
	Short: "Transposes a note or pitch class by an interval",
	Long: `Transposes a note or pitch class by an interval. The operands may come
in either order. With --add both operands are intervals and their sum is
printed.`,
	Example: "  fifths transpose C4 M3\n  fifths transpose --add M3 m3",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, ok := transposeArgs(args[0], args[1])
		if !ok {
			return fmt.Errorf("cannot transpose %q and %q", args[0], args[1])
		}
		printLine(cmd, res)
		return nil
	},
}

func transposeArgs(a, b string) (string, bool) {
	if addIntervals {
		return transpose.Add(a, b)
	}
	return transpose.Transpose(a, b)
}
