package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fifths/constants"
	"github.com/jsphweid/fifths/list"
	"github.com/jsphweid/fifths/midi"
	"github.com/spf13/cobra"
)

var (
	nameKeys bool
	useFlats bool
	refHz    float64
)

func init() {
	midiCmd.Flags().BoolVar(&nameKeys, "name", false, "name midi numbers instead")
	midiCmd.Flags().BoolVar(&useFlats, "flats", false, "spell black keys with flats")
	freqCmd.Flags().Float64Var(&refHz, "ref", 0, "frequency of A4 (defaults to FIFTHS_REFERENCE_HZ or 440)")
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(freqCmd)
}

var midiCmd = &cobra.Command{
	Use:     "midi <note>...",
	Short:   "Converts notes to midi numbers",
	Example: "  fifths midi C4 A4\n  fifths midi --name 61 62",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var res []string
		for _, v := range list.Listify(joinArgs(args)) {
			text := v.(string)
			if nameKeys {
				n, err := strconv.Atoi(text)
				if err != nil {
					return fmt.Errorf("not a midi number: %q", text)
				}
				res = append(res, midi.FromMidi(n, !useFlats))
				continue
			}
			m, ok := midi.ToMidi(text)
			if !ok {
				return fmt.Errorf("not a note: %q", text)
			}
			res = append(res, strconv.Itoa(m))
		}
		printLine(cmd, strings.Join(res, " "))
		return nil
	},
}

var freqCmd = &cobra.Command{
	Use:     "freq <note>...",
	Short:   "Prints the well-tempered frequency of notes",
	Example: "  fifths freq A4 C4\n  fifths freq --ref 432 A4",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := refHz
		if !cmd.Flags().Changed("ref") {
			ref = constants.GetReferenceHz()
		}
		if ref <= 0 {
			return fmt.Errorf("reference frequency must be positive, got %v", ref)
		}
		freq := midi.WellTemperedFrequency(ref)
		for _, v := range list.Listify(joinArgs(args)) {
			hz, ok := freq(v)
			if !ok {
				return fmt.Errorf("not a note: %q", v)
			}
			printLine(cmd, fmt.Sprintf("%v %.2f", v, hz))
		}
		return nil
	},
}
