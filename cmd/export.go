package cmd

import (
	"fmt"

	"github.com/jsphweid/chordgen/midi"
	"github.com/spf13/cobra"
)

func init() {
	addProgressionFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.mid> [chord...]",
	Short: "Writes a progression to a MIDI file",
	Long:  `Writes a progression to a standard MIDI file, one chord per bar.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := sessionFromArgs(args[1:])
		cobra.CheckErr(err)

		chords := sess.Progression().GetChords()
		cobra.CheckErr(midi.WriteProgressionFile(args[0], chords, exportOptions(cfg)))
		fmt.Printf("wrote %d chords in %s to %s\n", len(chords), sess.View().Key, args[0])
	},
}
