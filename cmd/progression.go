package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/jsphweid/chordgen/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// flags shared by the commands that build a progression
var (
	keyRoot   string
	keyScale  string
	numChords int
)

func addProgressionFlags(c *cobra.Command) {
	c.Flags().StringVar(&keyRoot, "key", "", "key root, e.g. C, F#, Bb (defaults to the config)")
	c.Flags().StringVar(&keyScale, "scale", "", "major or minor (defaults to the config)")
	c.Flags().IntVarP(&numChords, "chords", "n", -1, "number of random chords when none are given")
}

func keyScaleFromFlags() (*scale.Scale, error) {
	key, err := cfg.Key.Parse()
	if err != nil {
		return nil, err
	}
	if keyRoot != "" {
		if key.Root, err = pitchclass.Parse(keyRoot); err != nil {
			return nil, err
		}
	}
	if keyScale != "" {
		if key.ReferentialScale, err = scale.ParseReferentialScale(keyScale); err != nil {
			return nil, err
		}
	}
	return scale.New(key.Root, key.ReferentialScale)
}

// parseChord reads "root[:quality[:inversion]]", e.g. "G:7:1" or "Eb:min".
func parseChord(arg string, octave int) (*chord.Chord, error) {
	parts := strings.Split(arg, ":")
	if len(parts) > 3 {
		return nil, errors.Errorf("chord %q has too many parts", arg)
	}

	root, err := pitchclass.Parse(parts[0])
	if err != nil {
		return nil, err
	}
	q := chord.DefaultQuality
	if len(parts) > 1 {
		if q, err = quality.Parse(parts[1]); err != nil {
			return nil, err
		}
	}
	inversion := 0
	if len(parts) > 2 {
		if inversion, err = strconv.Atoi(parts[2]); err != nil {
			return nil, errors.Wrapf(err, "chord %q inversion", arg)
		}
	}
	return chord.New(root, octave, q, inversion, chord.DefaultPlaybackStyle), nil
}

// sessionFromArgs builds the given chords, or a random progression when
// there are none.
func sessionFromArgs(args []string) (*session.Session, error) {
	s, err := keyScaleFromFlags()
	if err != nil {
		return nil, err
	}

	octave := cfg.Progression.Octave
	if len(args) == 0 {
		n := numChords
		if n < 0 {
			n = cfg.Progression.NumChords
		}
		return session.NewRandom(s, octave, n, newRand(cfg))
	}

	sess := session.New(s, octave)
	for _, arg := range args {
		c, err := parseChord(arg, octave)
		if err != nil {
			return nil, err
		}
		if err := sess.Progression().PushChord(c); err != nil {
			return nil, err
		}
	}
	return sess, nil
}
