package accidental

import "github.com/pkg/errors"

type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

var ErrUnknownAccidental = errors.New("unknown accidental")

type info struct {
	symbol string
	name   string
}

var accidentalMap = map[Accidental]info{
	Natural: {symbol: "", name: ""},
	Sharp:   {symbol: "#", name: "sharp"},
	Flat:    {symbol: "b", name: "flat"},
}

// All lists the accidentals the getters in this package support.
func All() []Accidental {
	return []Accidental{Natural, Sharp, Flat}
}

func IsSupported(a Accidental) bool {
	_, ok := accidentalMap[a]
	return ok
}

// Symbol is the written decoration, e.g. "#" for Sharp and "" for Natural.
func (a Accidental) Symbol() string {
	return accidentalMap[a].symbol
}

// Name is the spoken decoration, e.g. "flat".
func (a Accidental) Name() string {
	return accidentalMap[a].name
}

func (a Accidental) String() string {
	switch a {
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

func (a Accidental) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Accidental) UnmarshalText(text []byte) error {
	for _, candidate := range All() {
		if candidate.String() == string(text) {
			*a = candidate
			return nil
		}
	}
	return errors.Wrapf(ErrUnknownAccidental, "%q", text)
}
