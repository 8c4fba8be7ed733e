package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/logger"
	"github.com/jsphweid/fifths/parse"
	"github.com/spf13/cobra"
)

var (
	cacheSize int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "fifths",
	Short: "Pitch arithmetic on the line of fifths",
	Long: `Parses, spells and transposes notes, pitch classes and intervals,
converts them to midi numbers and frequencies, and reads notes and chords
out of Standard MIDI Files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// the environment may have been filled from .env after package init
		logger.SetLevel(logger.ParseLevel(constants.GetLogLevel()))
		if verbose {
			logger.SetLevel(logger.LevelDebug)
		}

		size := constants.GetCacheSize()
		if cmd.Flags().Changed("cache-size") {
			size = cacheSize
		}
		p, err := parse.NewWithSize(size)
		if err != nil {
			return err
		}
		parse.SetDefault(p)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "parse cache entries, 0 for unbounded (defaults to FIFTHS_CACHE_SIZE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// joinArgs lets lists be passed as separate args or one quoted string.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func printLine(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
