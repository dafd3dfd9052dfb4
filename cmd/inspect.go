package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsphweid/chordgen/midi"
	"github.com/jsphweid/chordgen/representation"
	"github.com/jsphweid/chordgen/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fromTick      uint64
	maxNoteEvents int
)

func init() {
	inspectCmd.Flags().Uint64Var(&fromTick, "from", 0, "start at this tick")
	inspectCmd.Flags().IntVar(&maxNoteEvents, "max-events", 0, "stop after this many note events per track (0 reads everything)")
	inspectCmd.Flags().StringVar(&keyRoot, "key", "", "key root, e.g. C, F#, Bb (defaults to the config)")
	inspectCmd.Flags().StringVar(&keyScale, "scale", "", "major or minor (defaults to the config)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Labels the chords in a MIDI file",
	Long:  `Reads a MIDI file and labels every simultaneity it can recognise in the given key.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := keyScaleFromFlags()
		cobra.CheckErr(err)
		lines, err := inspect(args[0], s, fromTick, maxNoteEvents)
		cobra.CheckErr(err)
		for _, line := range lines {
			fmt.Println(line)
		}
	},
}

func inspect(path string, s *scale.Scale, from uint64, maxEvents int) ([]string, error) {
	smf, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	if from > 0 || maxEvents > 0 {
		smf = midi.Excerpt(smf, from, maxEvents)
	}

	var lines []string
	for _, sim := range midi.GetSimultaneities(smf) {
		c, err := midi.ChordFromKeys(sim.Notes)
		if err != nil {
			logrus.WithError(err).WithField("offset", sim.Offset).Warn("skipping simultaneity")
			continue
		}
		closed, err := midi.ClosedChordFromKeys(sim.Notes)
		if err != nil {
			logrus.WithError(err).WithField("offset", sim.Offset).Warn("skipping simultaneity")
			continue
		}
		o := representation.NewObserver(s)
		closed.AddRepresentationObserver(o)

		label := "-"
		if rep, ok := o.GetRepresentation(); ok {
			label = fmt.Sprintf("%s%s (%s) | %s%s", rep.Roman.Symbol, rep.Roman.BassFigure, rep.Roman.Name,
				rep.Alphabetical.Symbol, rep.Alphabetical.BassFigure)
		}
		offset := time.Duration(sim.Offset) * time.Microsecond
		lines = append(lines, fmt.Sprintf("%8v  %-16s %s", offset, strings.TrimSpace(c.String()), label))
	}
	return lines, nil
}
