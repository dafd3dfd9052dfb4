package scale

import (
	"strings"

	"github.com/jsphweid/chordgen/accidental"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultReferentialScale = IonianMajor

var (
	ErrInternal               = errors.New("internal scale error")
	ErrUnsupportedPitchClass  = errors.New("unsupported pitch class")
	ErrRepresentationOutRange = errors.New("representation index out of range")
)

type octaveSlot struct {
	alphabeticalIndex    int
	romanRepresentations []model.NoteRepresentation
	romanIndex           int
}

// Scale maps every pitch class onto a key: its preferred letter spelling and
// its scale degree relative to a referential scale. Chords in a progression
// share one Scale.
type Scale struct {
	rootPitchClass          pitchclass.PitchClass
	referentialScale        ReferentialScale
	referentialPitchClasses []pitchclass.PitchClass
	octave                  [pitchclass.NumPitchClasses]octaveSlot
}

func New(root pitchclass.PitchClass, referentialScale ReferentialScale) (*Scale, error) {
	if !pitchclass.IsSupported(root) {
		return nil, errors.Wrapf(ErrUnsupportedPitchClass, "root %d", root)
	}
	if !IsSupportedReferentialScale(referentialScale) {
		return nil, errors.Wrapf(ErrUnknownReferentialScale, "%d", referentialScale)
	}

	s := &Scale{rootPitchClass: root, referentialScale: referentialScale}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build derives the octave table from scratch. On failure the scale is left
// untouched.
func (s *Scale) build() error {
	steps := GetReferentialScaleSteps(s.referentialScale)

	// half steps above the root for every degree
	degreeOffsets := []int{0}
	for _, step := range steps {
		degreeOffsets = append(degreeOffsets, degreeOffsets[len(degreeOffsets)-1]+step)
	}

	var octave [pitchclass.NumPitchClasses]octaveSlot
	for offset := 0; offset < pitchclass.NumPitchClasses; offset++ {
		pc := pitchclass.Mod(int(s.rootPitchClass) + offset)
		romanRepresentations, err := buildRomanRepresentations(offset, degreeOffsets)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"root":             s.rootPitchClass,
				"referentialScale": s.referentialScale,
				"pitchClass":       pc,
			}).Error(err)
			return err
		}
		octave[pc] = octaveSlot{
			alphabeticalIndex:    defaultAlphabeticalIndex(pc),
			romanRepresentations: romanRepresentations,
		}
	}

	referentialPitchClasses := make([]pitchclass.PitchClass, len(degreeOffsets))
	for i, offset := range degreeOffsets {
		referentialPitchClasses[i] = pitchclass.Mod(int(s.rootPitchClass) + offset)
	}

	s.octave = octave
	s.referentialPitchClasses = referentialPitchClasses
	return nil
}

// defaultAlphabeticalIndex prefers the natural spelling, then the sharp one.
func defaultAlphabeticalIndex(pc pitchclass.PitchClass) int {
	for i, rep := range pitchclass.GetRepresentations(pc) {
		if rep.Accidental == accidental.Natural {
			return i
		}
	}
	return 0
}

func degreeRepresentation(degreeIndex int, a accidental.Accidental, count int) model.NoteRepresentation {
	symbol := strings.Repeat(a.Symbol(), count) + util.ConvertToRoman(degreeIndex+1)
	name := util.ConvertToWord(degreeIndex + 1)
	if count > 0 {
		name = strings.Repeat(a.Name()+" ", count) + name
	}
	return model.NoteRepresentation{Name: name, Symbol: symbol, Accidental: a}
}

// buildRomanRepresentations locates a pitch class (as half steps above the
// root) among the referential degrees. An exact match yields one spelling;
// otherwise the raised lower degree comes first and the lowered upper degree
// second.
func buildRomanRepresentations(offset int, degreeOffsets []int) ([]model.NoteRepresentation, error) {
	numDegrees := len(degreeOffsets)
	for i, lower := range degreeOffsets {
		if lower == offset {
			return []model.NoteRepresentation{degreeRepresentation(i, accidental.Natural, 0)}, nil
		}

		upperIndex := (i + 1) % numDegrees
		upper := pitchclass.NumPitchClasses
		if upperIndex != 0 {
			upper = degreeOffsets[upperIndex]
		}

		if lower < offset && offset < upper {
			return []model.NoteRepresentation{
				degreeRepresentation(i, accidental.Sharp, offset-lower),
				degreeRepresentation(upperIndex, accidental.Flat, upper-offset),
			}, nil
		}
	}

	return nil, errors.Wrapf(ErrInternal, "no referential degrees bracket offset %d", offset)
}

func (s *Scale) GetRootPitchClass() pitchclass.PitchClass {
	return s.rootPitchClass
}

func (s *Scale) GetReferentialScale() ReferentialScale {
	return s.referentialScale
}

// GetReferentialScalePitchClasses returns the 7 degrees, root first.
func (s *Scale) GetReferentialScalePitchClasses() []pitchclass.PitchClass {
	res := make([]pitchclass.PitchClass, len(s.referentialPitchClasses))
	copy(res, s.referentialPitchClasses)
	return res
}

func (s *Scale) SetReferentialScale(referentialScale ReferentialScale) error {
	if !IsSupportedReferentialScale(referentialScale) {
		return errors.Wrapf(ErrUnknownReferentialScale, "%d", referentialScale)
	}
	previous := s.referentialScale
	s.referentialScale = referentialScale
	if err := s.build(); err != nil {
		s.referentialScale = previous
		return err
	}
	return nil
}

// TransposeTo moves the key to a new root, keeping the referential scale.
func (s *Scale) TransposeTo(root pitchclass.PitchClass) error {
	if !pitchclass.IsSupported(root) {
		return errors.Wrapf(ErrUnsupportedPitchClass, "root %d", root)
	}
	previous := s.rootPitchClass
	s.rootPitchClass = root
	if err := s.build(); err != nil {
		s.rootPitchClass = previous
		return err
	}
	return nil
}

// TransposeBy moves the root by a signed number of half steps. Only the pitch
// class matters, so whole octaves are no-ops.
func (s *Scale) TransposeBy(halfSteps int) error {
	return s.TransposeTo(pitchclass.Mod(int(s.rootPitchClass) + halfSteps))
}

// GetRepresentation reads the precomputed table. pc must be supported.
func (s *Scale) GetRepresentation(pc pitchclass.PitchClass) model.PitchRepresentation {
	slot := s.octave[pc]
	alphabetical := pitchclass.GetRepresentation(pc, slot.alphabeticalIndex)
	return model.PitchRepresentation{
		Alphabetical: model.NoteRepresentation{
			Name:       alphabetical.Name(),
			Symbol:     alphabetical.FullSymbol(),
			Accidental: alphabetical.Accidental,
		},
		Roman: slot.romanRepresentations[slot.romanIndex],
	}
}

// GetRomanRepresentations lists every scale-degree spelling of pc.
func (s *Scale) GetRomanRepresentations(pc pitchclass.PitchClass) []model.NoteRepresentation {
	reps := s.octave[pc].romanRepresentations
	res := make([]model.NoteRepresentation, len(reps))
	copy(res, reps)
	return res
}

func (s *Scale) SelectRomanRepresentation(pc pitchclass.PitchClass, index int) error {
	if !pitchclass.IsSupported(pc) {
		return errors.Wrapf(ErrUnsupportedPitchClass, "%d", pc)
	}
	if index < 0 || index >= len(s.octave[pc].romanRepresentations) {
		return errors.Wrapf(ErrRepresentationOutRange, "roman index %d for %v", index, pc)
	}
	s.octave[pc].romanIndex = index
	return nil
}

func (s *Scale) SelectAlphabeticalRepresentation(pc pitchclass.PitchClass, index int) error {
	if !pitchclass.IsSupported(pc) {
		return errors.Wrapf(ErrUnsupportedPitchClass, "%d", pc)
	}
	if index < 0 || index >= len(pitchclass.GetRepresentations(pc)) {
		return errors.Wrapf(ErrRepresentationOutRange, "alphabetical index %d for %v", index, pc)
	}
	s.octave[pc].alphabeticalIndex = index
	return nil
}

// Name reads like "A major".
func (s *Scale) Name() string {
	return s.GetRepresentation(s.rootPitchClass).Alphabetical.Symbol + " " + s.referentialScale.Name()
}
