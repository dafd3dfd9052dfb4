package progression

import (
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/representation"
	"github.com/jsphweid/chordgen/scale"
	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("chord index out of range")
	ErrFull            = errors.New("progression is full")
	ErrEmpty           = errors.New("progression is empty")
)

// ChordProgression is an ordered row of chords sharing one key. It owns its
// chords; callers mutate a chord through GetChord.
type ChordProgression struct {
	chords []*chord.Chord
	scale  *scale.Scale
}

func New(s *scale.Scale) *ChordProgression {
	return &ChordProgression{scale: s}
}

func (p *ChordProgression) GetScale() *scale.Scale {
	return p.scale
}

func (p *ChordProgression) GetNumChords() int {
	return len(p.chords)
}

// AddChord inserts c before the chord currently at index; index may equal
// GetNumChords to append. c is labelled against the progression's key.
func (p *ChordProgression) AddChord(index int, c *chord.Chord) error {
	if len(p.chords) >= constants.MaxChords {
		return errors.Wrapf(ErrFull, "%d chords", len(p.chords))
	}
	if index < 0 || index > len(p.chords) {
		return errors.Wrapf(ErrIndexOutOfRange, "insert at %d, %d chords", index, len(p.chords))
	}

	p.chords = append(p.chords, nil)
	copy(p.chords[index+1:], p.chords[index:])
	p.chords[index] = c

	c.AddRepresentationObserver(representation.NewObserver(p.scale))
	return nil
}

func (p *ChordProgression) PushChord(c *chord.Chord) error {
	return p.AddChord(len(p.chords), c)
}

// RemoveChord hands the removed chord back to the caller.
func (p *ChordProgression) RemoveChord(index int) (*chord.Chord, error) {
	if index < 0 || index >= len(p.chords) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "remove at %d, %d chords", index, len(p.chords))
	}
	c := p.chords[index]
	p.chords = append(p.chords[:index], p.chords[index+1:]...)
	return c, nil
}

func (p *ChordProgression) PopChord() (*chord.Chord, error) {
	if len(p.chords) == 0 {
		return nil, ErrEmpty
	}
	return p.RemoveChord(len(p.chords) - 1)
}

func (p *ChordProgression) ClearChords() {
	p.chords = nil
}

func (p *ChordProgression) GetChord(index int) (*chord.Chord, error) {
	if index < 0 || index >= len(p.chords) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "get %d, %d chords", index, len(p.chords))
	}
	return p.chords[index], nil
}

func (p *ChordProgression) GetChords() []*chord.Chord {
	res := make([]*chord.Chord, len(p.chords))
	copy(res, p.chords)
	return res
}

// SetKey re-derives the shared scale and relabels every chord. Nothing
// changes if the scale cannot be built.
func (p *ChordProgression) SetKey(root pitchclass.PitchClass, referentialScale scale.ReferentialScale) error {
	s, err := scale.New(root, referentialScale)
	if err != nil {
		return err
	}
	p.scale = s
	for _, c := range p.chords {
		c.AddRepresentationObserver(representation.NewObserver(s))
	}
	return nil
}

// TransposeKey moves the shared scale's root and relabels every chord. The
// chords themselves keep their notes.
func (p *ChordProgression) TransposeKey(halfSteps int) error {
	if err := p.scale.TransposeBy(halfSteps); err != nil {
		return err
	}
	p.Relabel()
	return nil
}

// SelectSpelling picks how pc is written in notation n, then relabels every
// chord so none keeps a stale name.
func (p *ChordProgression) SelectSpelling(n scale.Notation, pc pitchclass.PitchClass, index int) error {
	if err := p.scale.SelectRepresentation(n, pc, index); err != nil {
		return err
	}
	p.Relabel()
	return nil
}

// Relabel re-notifies every chord's observer after the scale changed.
func (p *ChordProgression) Relabel() {
	for _, c := range p.chords {
		c.Refresh()
	}
}
