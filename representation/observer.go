package representation

import (
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

const noInversion = -1

var ErrRepresentationOutOfRange = chord.ErrRepresentationOutOfRange

// QualityInversion is one way of reading a chord: as quality q in the given
// inversion, rooted on RootPitchClass.
type QualityInversion struct {
	Quality        quality.ChordQuality
	Inversion      int
	RootPitchClass pitchclass.PitchClass
	BassPitchClass pitchclass.PitchClass
}

// Observer keeps a chord's names and symbols current, relative to a scale.
type Observer struct {
	scale               *scale.Scale
	candidates          []QualityInversion
	representations     []model.ChordRepresentation
	representationIndex int
}

func NewObserver(s *scale.Scale) *Observer {
	return &Observer{scale: s}
}

// rotateWithout drops arr[index] and returns the remaining elements starting
// just after it, wrapping around.
func rotateWithout(arr []int, index int) []int {
	res := make([]int, 0, len(arr)-1)
	res = append(res, arr[index+1:]...)
	res = append(res, arr[:index]...)
	return res
}

func equalInts(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// inversionInQuality reports which inversion of q produces intervals, or
// noInversion if none does.
func inversionInQuality(intervals []int, q quality.ChordQuality) int {
	steps := quality.GetIntervals(q)
	if len(steps) != len(intervals) {
		return noInversion
	}

	// the steps plus the gap back up to the root's octave form a closed cycle
	closing := pitchclass.NumPitchClasses - util.Sum(steps)%pitchclass.NumPitchClasses
	cycle := append(steps, closing)

	last := len(cycle) - 1
	for i := last; i >= 0; i-- {
		if equalInts(rotateWithout(cycle, i), intervals) {
			if i == last {
				return 0
			}
			return i + 1
		}
	}
	return noInversion
}

// PossibleQualityInversions lists every quality the chord can be read as, in
// quality order.
func PossibleQualityInversions(c *chord.Chord) []QualityInversion {
	numNotes := c.GetNumNotes()
	intervals := c.GetIntervals()

	var res []QualityInversion
	for _, q := range quality.All() {
		inversion := inversionInQuality(intervals, q)
		if inversion == noInversion {
			continue
		}

		if inversion >= numNotes || inversion < 0 {
			logrus.WithFields(logrus.Fields{
				"quality":   q,
				"inversion": inversion,
				"notes":     numNotes,
			}).Error("received erroneous inversion")
			return []QualityInversion{}
		}

		rootIndex := 0
		if inversion != 0 {
			rootIndex = numNotes - inversion
		}

		res = append(res, QualityInversion{
			Quality:        q,
			Inversion:      inversion,
			RootPitchClass: c.GetPitchClassAt(rootIndex),
			BassPitchClass: c.GetPitchClassAt(0),
		})
	}
	return res
}

func (o *Observer) build(qi QualityInversion) model.ChordRepresentation {
	descriptors := quality.GetSymbolDescriptors(qi.Quality)
	root := o.scale.GetRepresentation(qi.RootPitchClass)
	bass := o.scale.GetRepresentation(qi.BassPitchClass)

	alphaName := root.Alphabetical.Name
	romanName := root.Roman.Name
	if name := qi.Quality.Name(); name != "" {
		alphaName += " " + name
		romanName += " " + name
	}

	romanSymbol := root.Roman.Symbol
	if quality.IsLowercase(qi.Quality) {
		romanSymbol = util.ToLower(romanSymbol)
	}
	if quality.HasMinorSymbol(qi.Quality) {
		romanSymbol = descriptors.Prefix + romanSymbol
	} else {
		romanSymbol = descriptors.Prefix + romanSymbol + descriptors.Suffix
	}

	alphaBassFigure := ""
	if qi.Inversion != 0 {
		alphaBassFigure = "/" + bass.Alphabetical.Symbol
		alphaName += " over " + bass.Alphabetical.Name
	}

	var romanBassFigure string
	figures, ok := quality.GetInversionDescriptors(quality.GetType(qi.Quality), qi.Inversion)
	if !ok {
		// no figured bass for this kind of chord, borrow the letter name
		romanBassFigure = alphaBassFigure
		if qi.Inversion != 0 {
			romanName += " over " + bass.Alphabetical.Name
		}
	} else {
		romanBassFigure = figures.Upper
		if figures.Lower != "" {
			romanBassFigure += "/" + figures.Lower
		}
		if qi.Inversion != 0 {
			romanName += " in the " + util.ConvertToOrdinalWord(qi.Inversion) + " inversion"
		}
	}

	return model.ChordRepresentation{
		Alphabetical: model.NotationRepresentation{
			Name:        alphaName,
			Symbol:      descriptors.Prefix + root.Alphabetical.Symbol + descriptors.Suffix,
			Accidental:  root.Alphabetical.Accidental,
			LowerFigure: descriptors.Lower,
			UpperFigure: descriptors.Upper,
			BassFigure:  alphaBassFigure,
		},
		Roman: model.NotationRepresentation{
			Name:        romanName,
			Symbol:      romanSymbol,
			Accidental:  root.Roman.Accidental,
			LowerFigure: descriptors.Lower,
			UpperFigure: descriptors.Upper,
			BassFigure:  romanBassFigure,
		},
	}
}

// Notify recomputes every candidate reading of c. The selected reading is
// kept when the candidates are unchanged, e.g. after a respelling, and goes
// back to the first one otherwise.
func (o *Observer) Notify(c *chord.Chord) {
	candidates := PossibleQualityInversions(c)
	if !slices.Equal(candidates, o.candidates) {
		o.representationIndex = 0
	}
	o.candidates = candidates
	o.representations = make([]model.ChordRepresentation, len(o.candidates))
	for i, qi := range o.candidates {
		o.representations[i] = o.build(qi)
	}
}

func (o *Observer) GetRepresentation() (model.ChordRepresentation, bool) {
	if o.representationIndex >= len(o.representations) {
		return model.ChordRepresentation{}, false
	}
	return o.representations[o.representationIndex], true
}

func (o *Observer) GetRepresentations() []model.ChordRepresentation {
	res := make([]model.ChordRepresentation, len(o.representations))
	copy(res, o.representations)
	return res
}

func (o *Observer) GetCandidates() []QualityInversion {
	res := make([]QualityInversion, len(o.candidates))
	copy(res, o.candidates)
	return res
}

// SetRepresentationIndex picks between readings, e.g. Csus2 and Gsus4.
func (o *Observer) SetRepresentationIndex(index int) error {
	if index < 0 || index >= len(o.representations) {
		return errors.Wrapf(ErrRepresentationOutOfRange, "index %d, %d representations", index, len(o.representations))
	}
	o.representationIndex = index
	return nil
}

func (o *Observer) GetRepresentationIndex() int {
	return o.representationIndex
}
