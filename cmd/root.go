package cmd

import (
	"math/rand"
	"time"

	"github.com/jsphweid/chordgen/config"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/midi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chordgen",
	Short: "Generates and labels chord progressions",
	Long: `chordgen builds chord progressions in a key and labels every chord in
roman numeral and letter notation, including inversions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		level, err := logrus.ParseLevel(loaded.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", constants.GetConfigPath(), "path to a yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "overrides the configured log level")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func newRand(c config.Config) *rand.Rand {
	seed := c.Progression.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func exportOptions(c config.Config) midi.ExportOptions {
	opts := midi.DefaultExportOptions
	opts.TicksPerQuarter = c.Export.TicksPerQuarter
	opts.BeatsPerChord = c.Export.BeatsPerChord
	opts.Velocity = c.Export.Velocity
	return opts
}
