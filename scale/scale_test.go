package scale

import (
	"testing"

	"github.com/jsphweid/chordgen/accidental"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rep(alphaName, alphaSymbol string, alphaAcc accidental.Accidental, romanName, romanSymbol string, romanAcc accidental.Accidental) model.PitchRepresentation {
	return model.PitchRepresentation{
		Alphabetical: model.NoteRepresentation{Name: alphaName, Symbol: alphaSymbol, Accidental: alphaAcc},
		Roman:        model.NoteRepresentation{Name: romanName, Symbol: romanSymbol, Accidental: romanAcc},
	}
}

var aMajorOctave = map[pitchclass.PitchClass]model.PitchRepresentation{
	pitchclass.A:      rep("A", "A", accidental.Natural, "one", "I", accidental.Natural),
	pitchclass.ASharp: rep("A sharp", "A#", accidental.Sharp, "sharp one", "#I", accidental.Sharp),
	pitchclass.B:      rep("B", "B", accidental.Natural, "two", "II", accidental.Natural),
	pitchclass.C:      rep("C", "C", accidental.Natural, "sharp two", "#II", accidental.Sharp),
	pitchclass.CSharp: rep("C sharp", "C#", accidental.Sharp, "three", "III", accidental.Natural),
	pitchclass.D:      rep("D", "D", accidental.Natural, "four", "IV", accidental.Natural),
	pitchclass.DSharp: rep("D sharp", "D#", accidental.Sharp, "sharp four", "#IV", accidental.Sharp),
	pitchclass.E:      rep("E", "E", accidental.Natural, "five", "V", accidental.Natural),
	pitchclass.F:      rep("F", "F", accidental.Natural, "sharp five", "#V", accidental.Sharp),
	pitchclass.FSharp: rep("F sharp", "F#", accidental.Sharp, "six", "VI", accidental.Natural),
	pitchclass.G:      rep("G", "G", accidental.Natural, "sharp six", "#VI", accidental.Sharp),
	pitchclass.GSharp: rep("G sharp", "G#", accidental.Sharp, "seven", "VII", accidental.Natural),
}

var aMajorPitchClasses = []pitchclass.PitchClass{
	pitchclass.A, pitchclass.B, pitchclass.CSharp, pitchclass.D, pitchclass.E, pitchclass.FSharp, pitchclass.GSharp,
}

var aNaturalMinorOctave = map[pitchclass.PitchClass]model.PitchRepresentation{
	pitchclass.A:      rep("A", "A", accidental.Natural, "one", "I", accidental.Natural),
	pitchclass.ASharp: rep("A sharp", "A#", accidental.Sharp, "sharp one", "#I", accidental.Sharp),
	pitchclass.B:      rep("B", "B", accidental.Natural, "two", "II", accidental.Natural),
	pitchclass.C:      rep("C", "C", accidental.Natural, "three", "III", accidental.Natural),
	pitchclass.CSharp: rep("C sharp", "C#", accidental.Sharp, "sharp three", "#III", accidental.Sharp),
	pitchclass.D:      rep("D", "D", accidental.Natural, "four", "IV", accidental.Natural),
	pitchclass.DSharp: rep("D sharp", "D#", accidental.Sharp, "sharp four", "#IV", accidental.Sharp),
	pitchclass.E:      rep("E", "E", accidental.Natural, "five", "V", accidental.Natural),
	pitchclass.F:      rep("F", "F", accidental.Natural, "six", "VI", accidental.Natural),
	pitchclass.FSharp: rep("F sharp", "F#", accidental.Sharp, "sharp six", "#VI", accidental.Sharp),
	pitchclass.G:      rep("G", "G", accidental.Natural, "seven", "VII", accidental.Natural),
	pitchclass.GSharp: rep("G sharp", "G#", accidental.Sharp, "sharp seven", "#VII", accidental.Sharp),
}

var aNaturalMinorPitchClasses = []pitchclass.PitchClass{
	pitchclass.A, pitchclass.B, pitchclass.C, pitchclass.D, pitchclass.E, pitchclass.F, pitchclass.G,
}

func expectScaleToBe(t *testing.T, s *Scale, r ReferentialScale, pcs []pitchclass.PitchClass, octave map[pitchclass.PitchClass]model.PitchRepresentation) {
	t.Helper()
	assert := assert.New(t)
	assert.Equal(r, s.GetReferentialScale())
	assert.Equal(pcs, s.GetReferentialScalePitchClasses())
	for pc, expected := range octave {
		assert.Equal(expected, s.GetRepresentation(pc), pc.String())
	}
}

func TestNewMajor(t *testing.T) {
	s, err := New(pitchclass.A, DefaultReferentialScale)
	require.NoError(t, err)
	expectScaleToBe(t, s, IonianMajor, aMajorPitchClasses, aMajorOctave)
}

func TestNewNaturalMinor(t *testing.T) {
	s, err := New(pitchclass.A, IonianNaturalMinor)
	require.NoError(t, err)
	expectScaleToBe(t, s, IonianNaturalMinor, aNaturalMinorPitchClasses, aNaturalMinorOctave)
}

func TestRootIsAlwaysOne(t *testing.T) {
	for _, r := range AllReferentialScales() {
		for _, pc := range pitchclass.All() {
			s, err := New(pc, r)
			require.NoError(t, err)
			roman := s.GetRepresentation(pc).Roman
			assert.Equal(t, "I", roman.Symbol)
			assert.Equal(t, accidental.Natural, roman.Accidental)
		}
	}
}

func TestEveryPitchClassHasRomanSpellings(t *testing.T) {
	for _, r := range AllReferentialScales() {
		for _, root := range pitchclass.All() {
			s, err := New(root, r)
			require.NoError(t, err)
			for _, pc := range pitchclass.All() {
				reps := s.GetRomanRepresentations(pc)
				if len(reps) == 1 {
					assert.Equal(t, accidental.Natural, reps[0].Accidental)
					continue
				}
				require.Len(t, reps, 2)
				assert.Equal(t, accidental.Sharp, reps[0].Accidental)
				assert.Equal(t, accidental.Flat, reps[1].Accidental)
			}
		}
	}
}

func TestFlatSpellingCandidate(t *testing.T) {
	s, err := New(pitchclass.A, IonianMajor)
	require.NoError(t, err)
	reps := s.GetRomanRepresentations(pitchclass.C)
	assert.Equal(t, model.NoteRepresentation{Name: "flat three", Symbol: "bIII", Accidental: accidental.Flat}, reps[1])

	// between VII and the octave the upper neighbour wraps to I
	minor, err := New(pitchclass.A, IonianNaturalMinor)
	require.NoError(t, err)
	reps = minor.GetRomanRepresentations(pitchclass.GSharp)
	assert.Equal(t, "bI", reps[1].Symbol)
}

func TestSetReferentialScale(t *testing.T) {
	s, err := New(pitchclass.A, IonianMajor)
	require.NoError(t, err)

	require.NoError(t, s.SetReferentialScale(IonianMajor))
	expectScaleToBe(t, s, IonianMajor, aMajorPitchClasses, aMajorOctave)

	require.NoError(t, s.SetReferentialScale(IonianNaturalMinor))
	expectScaleToBe(t, s, IonianNaturalMinor, aNaturalMinorPitchClasses, aNaturalMinorOctave)

	assert.ErrorIs(t, s.SetReferentialScale(ReferentialScale(42)), ErrUnknownReferentialScale)
	assert.Equal(t, IonianNaturalMinor, s.GetReferentialScale())
}

func TestTransposeTo(t *testing.T) {
	s, err := New(pitchclass.C, IonianMajor)
	require.NoError(t, err)

	require.NoError(t, s.TransposeTo(pitchclass.A))
	assert.Equal(t, pitchclass.A, s.GetRootPitchClass())
	expectScaleToBe(t, s, IonianMajor, aMajorPitchClasses, aMajorOctave)

	assert.ErrorIs(t, s.TransposeTo(pitchclass.None), ErrUnsupportedPitchClass)
	assert.Equal(t, pitchclass.A, s.GetRootPitchClass())
}

func TestTransposeBy(t *testing.T) {
	cases := []struct {
		name      string
		root      pitchclass.PitchClass
		halfSteps int
	}{
		{"zero half steps", pitchclass.A, 0},
		{"up in the same octave", pitchclass.F, 4},
		{"down in the same octave", pitchclass.B, -2},
		{"up to a different octave", pitchclass.F, 28},
		{"down to a different octave", pitchclass.B, -26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.root, IonianMajor)
			require.NoError(t, err)
			require.NoError(t, s.TransposeBy(tc.halfSteps))
			assert.Equal(t, pitchclass.A, s.GetRootPitchClass())
			expectScaleToBe(t, s, IonianMajor, aMajorPitchClasses, aMajorOctave)
		})
	}
}

func TestNewRejectsUnsupportedInput(t *testing.T) {
	_, err := New(pitchclass.None, IonianMajor)
	assert.ErrorIs(t, err, ErrUnsupportedPitchClass)
	_, err = New(pitchclass.C, ReferentialScale(-1))
	assert.ErrorIs(t, err, ErrUnknownReferentialScale)
}

func TestSelectRepresentations(t *testing.T) {
	s, err := New(pitchclass.A, IonianMajor)
	require.NoError(t, err)

	require.NoError(t, s.SelectRomanRepresentation(pitchclass.C, 1))
	require.NoError(t, s.SelectAlphabeticalRepresentation(pitchclass.ASharp, 1))
	assert.Equal(t, "bIII", s.GetRepresentation(pitchclass.C).Roman.Symbol)
	assert.Equal(t, "Bb", s.GetRepresentation(pitchclass.ASharp).Alphabetical.Symbol)
	assert.Equal(t, "B flat", s.GetRepresentation(pitchclass.ASharp).Alphabetical.Name)

	assert.ErrorIs(t, s.SelectRomanRepresentation(pitchclass.A, 1), ErrRepresentationOutRange)
	assert.ErrorIs(t, s.SelectAlphabeticalRepresentation(pitchclass.D, 1), ErrRepresentationOutRange)
	assert.ErrorIs(t, s.SelectRomanRepresentation(pitchclass.None, 0), ErrUnsupportedPitchClass)
}

func TestBuildRomanRepresentationsReportsCorruptTables(t *testing.T) {
	// no degree sits at or below the offset
	_, err := buildRomanRepresentations(5, []int{6, 8, 10})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestParseReferentialScale(t *testing.T) {
	r, err := ParseReferentialScale("Natural Minor")
	assert.NoError(t, err)
	assert.Equal(t, IonianNaturalMinor, r)
	r, err = ParseReferentialScale("major")
	assert.NoError(t, err)
	assert.Equal(t, IonianMajor, r)
	_, err = ParseReferentialScale("lydian")
	assert.ErrorIs(t, err, ErrUnknownReferentialScale)
}

func TestName(t *testing.T) {
	s, err := New(pitchclass.EFlat, IonianNaturalMinor)
	require.NoError(t, err)
	assert.Equal(t, "D# natural minor", s.Name())
}

func TestSelectRepresentationByNotation(t *testing.T) {
	s, err := New(pitchclass.A, IonianMajor)
	require.NoError(t, err)

	roman := s.GetRepresentations(Roman, pitchclass.C)
	require.Len(t, roman, 2)
	assert.Equal(t, "#II", roman[0].Symbol)
	assert.Equal(t, "bIII", roman[1].Symbol)

	alpha := s.GetRepresentations(Alphabetical, pitchclass.ASharp)
	require.Len(t, alpha, 2)
	assert.Equal(t, "A#", alpha[0].Symbol)
	assert.Equal(t, "Bb", alpha[1].Symbol)
	assert.Len(t, s.GetRepresentations(Alphabetical, pitchclass.C), 1)

	require.NoError(t, s.SelectRepresentation(Roman, pitchclass.C, 1))
	require.NoError(t, s.SelectRepresentation(Alphabetical, pitchclass.ASharp, 1))
	assert.Equal(t, "bIII", s.GetRepresentation(pitchclass.C).Roman.Symbol)
	assert.Equal(t, "Bb", s.GetRepresentation(pitchclass.ASharp).Alphabetical.Symbol)

	assert.ErrorIs(t, s.SelectRepresentation(Alphabetical, pitchclass.C, 1), ErrRepresentationOutRange)
	assert.ErrorIs(t, s.SelectRepresentation(Notation(7), pitchclass.C, 0), ErrUnknownNotation)
}

func TestParseNotation(t *testing.T) {
	n, err := ParseNotation("Roman")
	require.NoError(t, err)
	assert.Equal(t, Roman, n)
	n, err = ParseNotation("alphabetical")
	require.NoError(t, err)
	assert.Equal(t, Alphabetical, n)
	assert.Equal(t, "roman", Roman.String())

	_, err = ParseNotation("solfege")
	assert.ErrorIs(t, err, ErrUnknownNotation)
}
