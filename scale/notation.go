package scale

import (
	"strings"

	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/pkg/errors"
)

// Notation picks which of a pitch class's two spellings a selection applies
// to.
type Notation int

const (
	Alphabetical Notation = iota
	Roman
)

var ErrUnknownNotation = errors.New("unknown notation")

func (n Notation) String() string {
	switch n {
	case Alphabetical:
		return "alphabetical"
	case Roman:
		return "roman"
	default:
		return "unknown"
	}
}

func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alphabetical", "letter":
		return Alphabetical, nil
	case "roman":
		return Roman, nil
	default:
		return Alphabetical, errors.Wrapf(ErrUnknownNotation, "%q", s)
	}
}

// SelectRepresentation dispatches to the roman or alphabetical selector.
func (s *Scale) SelectRepresentation(n Notation, pc pitchclass.PitchClass, index int) error {
	switch n {
	case Alphabetical:
		return s.SelectAlphabeticalRepresentation(pc, index)
	case Roman:
		return s.SelectRomanRepresentation(pc, index)
	default:
		return errors.Wrapf(ErrUnknownNotation, "%d", n)
	}
}

// GetRepresentations lists the spellings of pc available in notation n.
func (s *Scale) GetRepresentations(n Notation, pc pitchclass.PitchClass) []model.NoteRepresentation {
	if n == Roman {
		return s.GetRomanRepresentations(pc)
	}
	var res []model.NoteRepresentation
	for _, rep := range pitchclass.GetRepresentations(pc) {
		res = append(res, model.NoteRepresentation{
			Name:       rep.Name(),
			Symbol:     rep.FullSymbol(),
			Accidental: rep.Accidental,
		})
	}
	return res
}
