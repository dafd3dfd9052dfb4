package cmd

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/midi"
	"github.com/jsphweid/chordgen/note"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChord(t *testing.T) {
	cases := []struct {
		arg      string
		expected string
		q        quality.ChordQuality
	}{
		{"C", "C4 E4 G4", quality.MajorTriad},
		{"a:min", "A4 C5 E5", quality.MinorTriad},
		{"G:7:1", "B4 D5 F5 G5", quality.DominantSeven},
		{"Bb:maj7:-1", "A4 A#4 D5 F5", quality.MajorMajorSeven},
	}
	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			c, err := parseChord(tc.arg, 4)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.String())
			q, _ := c.GetQuality()
			assert.Equal(t, tc.q, q)
		})
	}

	for _, bad := range []string{"H", "C:lydian", "C:maj:x", "C:maj:1:2"} {
		_, err := parseChord(bad, 4)
		assert.Error(t, err, bad)
	}
}

func TestInspect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.mid")
	chords := []*chord.Chord{
		chord.New(pitchclass.C, 4, quality.MajorTriad, 0, chord.Block),
		chord.New(pitchclass.G, 3, quality.DominantSeven, 1, chord.Block),
	}
	require.NoError(t, midi.WriteProgressionFile(path, chords, midi.DefaultExportOptions))

	s, err := scale.New(pitchclass.C, scale.IonianMajor)
	require.NoError(t, err)
	lines, err := inspect(path, s, 0, 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "C4 E4 G4")
	assert.Contains(t, lines[0], "I (one major) | C")
	assert.Contains(t, lines[1], "V65 (five dominant seven in the first inversion) | G/B")

	lines, err = inspect(path, s, 384, 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "G/B")

	_, err = inspect(filepath.Join(t.TempDir(), "missing.mid"), s, 0, 0)
	assert.Error(t, err)
}

func TestInspectNamesDoubledVoicings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubled.mid")
	open, err := chord.NewFromNotes([]*note.Note{
		note.New(pitchclass.C, 3), note.New(pitchclass.G, 3), note.New(pitchclass.C, 4), note.New(pitchclass.E, 4),
	})
	require.NoError(t, err)
	firstInversion, err := chord.NewFromNotes([]*note.Note{
		note.New(pitchclass.E, 3), note.New(pitchclass.C, 4), note.New(pitchclass.G, 4), note.New(pitchclass.E, 5),
	})
	require.NoError(t, err)
	require.NoError(t, midi.WriteProgressionFile(path, []*chord.Chord{open, firstInversion}, midi.DefaultExportOptions))

	s, err := scale.New(pitchclass.C, scale.IonianMajor)
	require.NoError(t, err)
	lines, err := inspect(path, s, 0, 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "C3 G3 C4 E4")
	assert.Contains(t, lines[0], "I (one major) | C")
	assert.Contains(t, lines[1], "E3 C4 G4 E5")
	assert.Contains(t, lines[1], "I6 (one major in the first inversion) | C/E")
}
