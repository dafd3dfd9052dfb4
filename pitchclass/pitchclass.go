package pitchclass

import (
	"math"
	"strings"

	"github.com/jsphweid/chordgen/accidental"
	"github.com/pkg/errors"
)

// PitchClass is one of the 12 chromatic notes, C = 0 through B = 11.
// Enharmonic spellings share a value.
type PitchClass int

const (
	None PitchClass = -1

	C      PitchClass = 0
	CSharp PitchClass = 1
	DFlat  PitchClass = 1
	D      PitchClass = 2
	DSharp PitchClass = 3
	EFlat  PitchClass = 3
	E      PitchClass = 4
	FFlat  PitchClass = 4
	ESharp PitchClass = 5
	F      PitchClass = 5
	FSharp PitchClass = 6
	GFlat  PitchClass = 6
	G      PitchClass = 7
	GSharp PitchClass = 8
	AFlat  PitchClass = 8
	A      PitchClass = 9
	ASharp PitchClass = 10
	BFlat  PitchClass = 10
	B      PitchClass = 11
)

const (
	NumPitchClasses = 12
	BaseOctave      = 4
)

var ErrUnknownPitchClass = errors.New("unknown pitch class")

// Representation is one written spelling of a pitch class, e.g. "D" + Flat.
type Representation struct {
	Symbol     string
	Accidental accidental.Accidental
}

// FullSymbol joins the letter and the accidental symbol ("Db").
func (r Representation) FullSymbol() string {
	return r.Symbol + r.Accidental.Symbol()
}

// Name is the spoken spelling ("D flat").
func (r Representation) Name() string {
	if r.Accidental == accidental.Natural {
		return r.Symbol
	}
	return r.Symbol + " " + r.Accidental.Name()
}

type info struct {
	basePitch       float64
	representations []Representation
}

// base pitches are octave 4
var pitchClassMap = [NumPitchClasses]info{
	C:      {261.63, []Representation{{"C", accidental.Natural}}},
	CSharp: {277.18, []Representation{{"C", accidental.Sharp}, {"D", accidental.Flat}}},
	D:      {293.66, []Representation{{"D", accidental.Natural}}},
	DSharp: {311.13, []Representation{{"D", accidental.Sharp}, {"E", accidental.Flat}}},
	E:      {329.63, []Representation{{"E", accidental.Natural}}},
	F:      {349.23, []Representation{{"F", accidental.Natural}}},
	FSharp: {369.99, []Representation{{"F", accidental.Sharp}, {"G", accidental.Flat}}},
	G:      {392.00, []Representation{{"G", accidental.Natural}}},
	GSharp: {415.30, []Representation{{"G", accidental.Sharp}, {"A", accidental.Flat}}},
	A:      {440.00, []Representation{{"A", accidental.Natural}}},
	ASharp: {466.16, []Representation{{"A", accidental.Sharp}, {"B", accidental.Flat}}},
	B:      {493.88, []Representation{{"B", accidental.Natural}}},
}

// All returns the supported pitch classes in ascending order.
func All() []PitchClass {
	res := make([]PitchClass, NumPitchClasses)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func IsSupported(pc PitchClass) bool {
	return pc >= C && pc <= B
}

// Mod normalizes any integer into [0, 12).
func Mod(n int) PitchClass {
	m := n % NumPitchClasses
	if m < 0 {
		m += NumPitchClasses
	}
	return PitchClass(m)
}

// GetRepresentations returns the sharp spelling first, then the flat one.
// Naturals have a single spelling.
func GetRepresentations(pc PitchClass) []Representation {
	return pitchClassMap[pc].representations
}

func GetRepresentation(pc PitchClass, index int) Representation {
	return GetRepresentations(pc)[index]
}

func GetPitch(pc PitchClass, octave int) float64 {
	return math.Pow(2, float64(octave-BaseOctave)) * pitchClassMap[pc].basePitch
}

func (pc PitchClass) String() string {
	if !IsSupported(pc) {
		return "none"
	}
	return GetRepresentation(pc, 0).FullSymbol()
}

func (pc PitchClass) MarshalText() ([]byte, error) {
	return []byte(pc.String()), nil
}

func (pc *PitchClass) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*pc = parsed
	return nil
}

var letters = map[byte]PitchClass{'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B}

// Parse reads spellings such as "C", "f#", "Bb", "E sharp" or "a flat".
func Parse(s string) (PitchClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None, errors.Wrap(ErrUnknownPitchClass, "empty string")
	}

	base, ok := letters[strings.ToUpper(s[:1])[0]]
	if !ok {
		return None, errors.Wrapf(ErrUnknownPitchClass, "%q", s)
	}

	offset := 0
	rest := strings.ToLower(strings.TrimSpace(s[1:]))
	switch rest {
	case "":
	case "#", "sharp", "♯":
		offset = 1
	case "b", "flat", "♭":
		offset = -1
	default:
		return None, errors.Wrapf(ErrUnknownPitchClass, "%q", s)
	}

	return Mod(int(base) + offset), nil
}
