package cmd

import (
	"github.com/jsphweid/chordgen/tui"
	"github.com/spf13/cobra"
)

var editExportPath string

func init() {
	addProgressionFlags(editCmd)
	editCmd.Flags().StringVarP(&editExportPath, "out", "o", "progression.mid", "where the e key writes MIDI")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [chord...]",
	Short: "Edits a progression in the terminal",
	Long:  `Opens an interactive editor on a progression.`,
	Run: func(cmd *cobra.Command, args []string) {
		sess, err := sessionFromArgs(args)
		cobra.CheckErr(err)
		cobra.CheckErr(tui.Run(tui.New(sess, newRand(cfg), editExportPath, exportOptions(cfg))))
	},
}
