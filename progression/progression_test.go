package progression

import (
	"testing"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgression(t *testing.T) *ChordProgression {
	t.Helper()
	s, err := scale.New(pitchclass.C, scale.IonianMajor)
	require.NoError(t, err)
	return New(s)
}

func roots(p *ChordProgression) []pitchclass.PitchClass {
	var res []pitchclass.PitchClass
	for _, c := range p.GetChords() {
		res = append(res, c.GetPitchClassAt(0))
	}
	return res
}

func TestAddChordPreservesOrder(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)

	assert.NoError(p.PushChord(chord.NewDefault(pitchclass.C)))
	assert.NoError(p.PushChord(chord.NewDefault(pitchclass.G)))
	assert.NoError(p.AddChord(1, chord.NewDefault(pitchclass.F)))
	assert.NoError(p.AddChord(0, chord.NewDefault(pitchclass.A)))

	assert.Equal([]pitchclass.PitchClass{pitchclass.A, pitchclass.C, pitchclass.F, pitchclass.G}, roots(p))
	assert.Equal(4, p.GetNumChords())
}

func TestAddChordLabelsAgainstKey(t *testing.T) {
	p := newProgression(t)
	c := chord.New(pitchclass.F, 4, quality.MajorTriad, 0, chord.Block)
	require.NoError(t, p.PushChord(c))

	rep, err := c.GetRepresentation()
	require.NoError(t, err)
	assert.Equal(t, "IV", rep.Roman.Symbol)
	assert.Equal(t, "F major", rep.Alphabetical.Name)
}

func TestAddChordRejectsBadIndex(t *testing.T) {
	p := newProgression(t)
	assert.ErrorIs(t, p.AddChord(1, chord.NewDefault(pitchclass.C)), ErrIndexOutOfRange)
	assert.ErrorIs(t, p.AddChord(-1, chord.NewDefault(pitchclass.C)), ErrIndexOutOfRange)
	assert.Equal(t, 0, p.GetNumChords())
}

func TestAddChordStopsAtMaxChords(t *testing.T) {
	p := newProgression(t)
	for i := 0; i < constants.MaxChords; i++ {
		require.NoError(t, p.PushChord(chord.NewDefault(pitchclass.C)))
	}
	assert.ErrorIs(t, p.PushChord(chord.NewDefault(pitchclass.C)), ErrFull)
	assert.Equal(t, constants.MaxChords, p.GetNumChords())
}

func TestRemoveChordReturnsSameInstance(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)
	c := chord.NewDefault(pitchclass.D)
	require.NoError(t, p.PushChord(chord.NewDefault(pitchclass.C)))
	require.NoError(t, p.AddChord(1, c))
	require.NoError(t, p.PushChord(chord.NewDefault(pitchclass.E)))

	removed, err := p.RemoveChord(1)
	assert.NoError(err)
	assert.Same(c, removed)
	assert.Equal([]pitchclass.PitchClass{pitchclass.C, pitchclass.E}, roots(p))

	_, err = p.RemoveChord(2)
	assert.ErrorIs(err, ErrIndexOutOfRange)
}

func TestPopAndClear(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)
	_, err := p.PopChord()
	assert.ErrorIs(err, ErrEmpty)

	last := chord.NewDefault(pitchclass.B)
	require.NoError(t, p.PushChord(chord.NewDefault(pitchclass.A)))
	require.NoError(t, p.PushChord(last))

	popped, err := p.PopChord()
	assert.NoError(err)
	assert.Same(last, popped)
	assert.Equal(1, p.GetNumChords())

	p.ClearChords()
	assert.Equal(0, p.GetNumChords())
	_, err = p.GetChord(0)
	assert.ErrorIs(err, ErrIndexOutOfRange)
}

func TestGetChordIsOwnedReference(t *testing.T) {
	p := newProgression(t)
	require.NoError(t, p.PushChord(chord.NewDefault(pitchclass.C)))

	c, err := p.GetChord(0)
	require.NoError(t, err)
	c.SetQuality(quality.MinorTriad)

	again, _ := p.GetChord(0)
	rep, err := again.GetRepresentation()
	require.NoError(t, err)
	assert.Equal(t, "Cm", rep.Alphabetical.Symbol)
	assert.Equal(t, "i", rep.Roman.Symbol)
}

func TestSetKeyRelabelsChords(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)
	c := chord.NewDefault(pitchclass.G)
	require.NoError(t, p.PushChord(c))

	require.NoError(t, p.SetKey(pitchclass.G, scale.IonianMajor))
	assert.Equal(pitchclass.G, p.GetScale().GetRootPitchClass())
	rep, _ := c.GetRepresentation()
	assert.Equal("I", rep.Roman.Symbol)

	require.NoError(t, p.SetKey(pitchclass.E, scale.IonianNaturalMinor))
	rep, _ = c.GetRepresentation()
	assert.Equal("III", rep.Roman.Symbol)
	assert.Equal("three major", rep.Roman.Name)

	assert.Error(p.SetKey(pitchclass.None, scale.IonianMajor))
	assert.Equal(pitchclass.E, p.GetScale().GetRootPitchClass())
}

func TestTransposeKeyRelabelsChords(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)
	c := chord.NewDefault(pitchclass.G)
	require.NoError(t, p.PushChord(c))

	require.NoError(t, p.TransposeKey(2))
	assert.Equal(pitchclass.D, p.GetScale().GetRootPitchClass())
	rep, _ := c.GetRepresentation()
	assert.Equal("IV", rep.Roman.Symbol)
	assert.Equal("G4 B4 D5", c.String())

	require.NoError(t, p.TransposeKey(-14))
	rep, _ = c.GetRepresentation()
	assert.Equal("V", rep.Roman.Symbol)
}

func TestSelectSpellingRelabelsChords(t *testing.T) {
	assert := assert.New(t)
	p := newProgression(t)
	c := chord.NewDefault(pitchclass.EFlat)
	require.NoError(t, p.PushChord(c))

	rep, _ := c.GetRepresentation()
	assert.Equal("#II", rep.Roman.Symbol)
	assert.Equal("D#", rep.Alphabetical.Symbol)

	require.NoError(t, p.SelectSpelling(scale.Roman, pitchclass.EFlat, 1))
	require.NoError(t, p.SelectSpelling(scale.Alphabetical, pitchclass.EFlat, 1))
	rep, _ = c.GetRepresentation()
	assert.Equal("bIII", rep.Roman.Symbol)
	assert.Equal("flat three major", rep.Roman.Name)
	assert.Equal("Eb", rep.Alphabetical.Symbol)

	assert.ErrorIs(p.SelectSpelling(scale.Roman, pitchclass.EFlat, 2), scale.ErrRepresentationOutRange)
	rep, _ = c.GetRepresentation()
	assert.Equal("bIII", rep.Roman.Symbol)
}
