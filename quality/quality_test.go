package quality

import (
	"testing"

	"github.com/jsphweid/chordgen/util"
	"github.com/stretchr/testify/assert"
)

func TestEveryQualityFitsInAnOctave(t *testing.T) {
	for _, q := range All() {
		steps := GetIntervals(q)
		assert.NotEmpty(t, steps, q.Name())
		assert.Less(t, util.Sum(steps), 12, q.Name())
		for _, s := range steps {
			assert.Greater(t, s, 0, q.Name())
		}
	}
}

func TestQualityTypesMatchNoteCounts(t *testing.T) {
	for _, q := range All() {
		switch GetType(q) {
		case Triad:
			assert.Len(t, GetIntervals(q), 2, q.Name())
		case Seventh:
			assert.Len(t, GetIntervals(q), 3, q.Name())
		}
	}
	assert.Equal(t, Other, GetType(SuspendedTwo))
	assert.Equal(t, Other, GetType(SuspendedFour))
}

func TestGetIntervalsReturnsCopy(t *testing.T) {
	steps := GetIntervals(MajorTriad)
	steps[0] = 99
	assert.Equal(t, []int{4, 3}, GetIntervals(MajorTriad))
}

func TestAllIsOrdered(t *testing.T) {
	all := All()
	assert.Len(t, all, 12)
	assert.Equal(t, MajorTriad, all[0])
	assert.Equal(t, DiminishedSeven, all[len(all)-1])
}

func TestInversionDescriptors(t *testing.T) {
	assert := assert.New(t)

	d, ok := GetInversionDescriptors(Triad, 2)
	assert.True(ok)
	assert.Equal(InversionDescriptors{Upper: "6", Lower: "4"}, d)

	d, ok = GetInversionDescriptors(Seventh, 3)
	assert.True(ok)
	assert.Equal("42", d.Upper)

	_, ok = GetInversionDescriptors(Other, 1)
	assert.False(ok)
	_, ok = GetInversionDescriptors(Triad, 3)
	assert.False(ok)
}

func TestLowercaseQualities(t *testing.T) {
	lowercase := []ChordQuality{MinorTriad, DiminishedTriad, MinorMajorSeven, MinorMinorSeven, HalfDiminishedSeven, DiminishedSeven}
	for _, q := range All() {
		assert.Equal(t, util.Contains(lowercase, q), IsLowercase(q), q.Name())
	}
	assert.True(t, HasMinorSymbol(MinorTriad))
	assert.False(t, HasMinorSymbol(DiminishedTriad))
}

func TestParse(t *testing.T) {
	q, err := Parse("m7")
	assert.NoError(t, err)
	assert.Equal(t, MinorMinorSeven, q)

	q, err = Parse("Dominant Seven")
	assert.NoError(t, err)
	assert.Equal(t, DominantSeven, q)

	_, err = Parse("ninth")
	assert.ErrorIs(t, err, ErrUnknownQuality)
}
