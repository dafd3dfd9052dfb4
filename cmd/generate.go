package cmd

import (
	"fmt"

	"github.com/jsphweid/chordgen/tui"
	"github.com/spf13/cobra"
)

var alphabetical bool

func init() {
	addProgressionFlags(generateCmd)
	generateCmd.Flags().BoolVar(&alphabetical, "alphabetical", false, "label chords with letter names instead of roman numerals")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate [chord...]",
	Short: "Prints a labelled progression",
	Long: `Prints a progression with every chord labelled. Chords are given as
root[:quality[:inversion]], e.g. "C" "A:min" "G:7:1". With no chords a random
progression is generated.`,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := sessionFromArgs(args)
		cobra.CheckErr(err)
		fmt.Println(tui.RenderProgression(sess.View(), !alphabetical, -1))
	},
}
