package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fifths/list"
	"github.com/spf13/cobra"
)

var (
	descending bool
	downwards  bool
)

func init() {
	sortCmd.Flags().BoolVar(&descending, "desc", false, "sort from high to low")
	directionCmd.Flags().BoolVar(&downwards, "down", false, "force a falling line")
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(directionCmd)
	rootCmd.AddCommand(harmonizeCmd)
}

var sortCmd = &cobra.Command{
	Use:   "sort <pitch>...",
	Short: "Sorts pitches by height",
	Long: `Sorts pitches by height. Pitch classes sort below every note and
anything that does not parse is kept, at the front.`,
	Example: "  fifths sort G4 C4 E4\n  fifths sort --desc 'C4, E4, G3'",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmp := list.Ascending
		if descending {
			cmp = list.Descending
		}
		printLine(cmd, strings.Join(list.Sort(cmp, joinArgs(args)), " "))
	},
}

var directionCmd = &cobra.Command{
	Use:     "direction <pitch>...",
	Short:   "Moves notes by octaves into a rising or falling line",
	Example: "  fifths direction C4 G3 E5\n  fifths direction --down E5 C A F",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := list.Up
		if downwards {
			dir = list.Down
		}
		printLine(cmd, strings.Join(list.ForceDirection(joinArgs(args), dir), " "))
	},
}

var harmonizeCmd = &cobra.Command{
	Use:   "harmonize <by> <pitch>...",
	Short: "Transposes every pitch of a list by one pitch",
	Long: `Transposes every pitch of a list by one pitch. Give an interval to move
a melody, or a note to build intervals on it as a root.`,
	Example: "  fifths harmonize C4 1P 3M 5P\n  fifths harmonize M3 C4 E4 G4",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := list.Harmonize(joinArgs(args[1:]), args[0])
		if len(res) == 0 {
			return fmt.Errorf("nothing to harmonize with %q", args[0])
		}
		printLine(cmd, strings.Join(res, " "))
		return nil
	},
}
