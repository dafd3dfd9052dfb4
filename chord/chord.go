package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/note"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
)

const (
	DefaultOctave        = note.DefaultOctave
	DefaultQuality       = quality.MajorTriad
	DefaultPlaybackStyle = Block
)

var (
	ErrNoObserver       = errors.New("chord has no representation observer")
	ErrNoRepresentation = errors.New("no chord quality matches the chord")
	ErrNoNotes          = errors.New("a chord needs at least one note")
	ErrNoteOutOfRange   = errors.New("note index out of range")

	ErrRepresentationOutOfRange = errors.New("representation index out of range")
)

// RepresentationObserver is told about every change to a chord's notes.
type RepresentationObserver interface {
	Notify(c *Chord)
	GetRepresentation() (model.ChordRepresentation, bool)
}

// RepresentationSelector is an observer that can offer more than one reading
// of a chord and let the caller pick.
type RepresentationSelector interface {
	GetRepresentations() []model.ChordRepresentation
	SetRepresentationIndex(index int) error
	GetRepresentationIndex() int
}

// Chord is a stack of notes, lowest first. intervals[i] is the distance in
// half steps between notes[i] and notes[i+1].
type Chord struct {
	notes         []*note.Note
	intervals     []int
	quality       quality.ChordQuality
	hasQuality    bool
	playbackStyle PlaybackStyle
	observer      RepresentationObserver
}

// New stacks the quality's intervals on the root and then applies the
// inversion (positive inverts up, negative down).
func New(root pitchclass.PitchClass, octave int, q quality.ChordQuality, inversion int, style PlaybackStyle) *Chord {
	c := &Chord{
		quality:       q,
		hasQuality:    true,
		playbackStyle: style,
	}
	c.notes = buildNotes(root, octave, quality.GetIntervals(q))
	c.intervals = quality.GetIntervals(q)
	c.invert(inversion)
	return c
}

// NewDefault is a root position major triad in octave 4.
func NewDefault(root pitchclass.PitchClass) *Chord {
	return New(root, DefaultOctave, DefaultQuality, 0, DefaultPlaybackStyle)
}

// NewFromNotes voices an arbitrary set of notes. Unisons are collapsed. The
// chord has no quality until SetQuality is called.
func NewFromNotes(notes []*note.Note) (*Chord, error) {
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	sorted := make([]*note.Note, 0, len(notes))
	for _, n := range notes {
		sorted = append(sorted, n.Clone())
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AbsoluteHalfSteps() < sorted[j].AbsoluteHalfSteps()
	})

	c := &Chord{playbackStyle: DefaultPlaybackStyle}
	for _, n := range sorted {
		if len(c.notes) > 0 {
			prev := c.notes[len(c.notes)-1]
			if prev.AbsoluteHalfSteps() == n.AbsoluteHalfSteps() {
				continue
			}
			c.intervals = append(c.intervals, n.AbsoluteHalfSteps()-prev.AbsoluteHalfSteps())
		}
		c.notes = append(c.notes, n)
	}
	return c, nil
}

// NewClosedFromNotes keeps the lowest note as the bass and stacks every other
// pitch class in the octave above it, dropping doublings. C4 E4 G4 C5 and
// C3 G4 E5 both become C E G.
func NewClosedFromNotes(notes []*note.Note) (*Chord, error) {
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	bass := notes[0]
	for _, n := range notes[1:] {
		if n.AbsoluteHalfSteps() < bass.AbsoluteHalfSteps() {
			bass = n
		}
	}

	closed := make([]*note.Note, 0, len(notes))
	for _, n := range notes {
		offset := (n.AbsoluteHalfSteps() - bass.AbsoluteHalfSteps()) % pitchclass.NumPitchClasses
		nt := bass.Clone()
		nt.TransposeBy(offset)
		closed = append(closed, nt)
	}
	return NewFromNotes(closed)
}

type position struct {
	pitchClass pitchclass.PitchClass
	octave     int
}

func buildPositions(root pitchclass.PitchClass, octave int, steps []int) []position {
	positions := []position{{root, octave}}
	current := int(root)
	for _, step := range steps {
		current += step
		if current >= pitchclass.NumPitchClasses {
			octave += current / pitchclass.NumPitchClasses
			current %= pitchclass.NumPitchClasses
		}
		positions = append(positions, position{pitchclass.PitchClass(current), octave})
	}
	return positions
}

func buildNotes(root pitchclass.PitchClass, octave int, steps []int) []*note.Note {
	positions := buildPositions(root, octave, steps)
	notes := make([]*note.Note, len(positions))
	for i, p := range positions {
		notes[i] = note.New(p.pitchClass, p.octave)
	}
	return notes
}

func (c *Chord) notify() {
	if c.observer != nil {
		c.observer.Notify(c)
	}
}

// AddRepresentationObserver replaces any existing observer and notifies the
// new one straight away.
func (c *Chord) AddRepresentationObserver(o RepresentationObserver) {
	c.observer = o
	c.notify()
}

func (c *Chord) RemoveRepresentationObserver() {
	c.observer = nil
}

// Refresh re-notifies the observer without touching the notes, e.g. after the
// scale it reads from changed.
func (c *Chord) Refresh() {
	c.notify()
}

func (c *Chord) GetRepresentation() (model.ChordRepresentation, error) {
	if c.observer == nil {
		return model.ChordRepresentation{}, ErrNoObserver
	}
	rep, ok := c.observer.GetRepresentation()
	if !ok {
		return model.ChordRepresentation{}, errors.Wrapf(ErrNoRepresentation, "intervals %v", c.intervals)
	}
	return rep, nil
}

// GetRepresentations lists every reading the observer offers and the index
// of the selected one. Observers without a choice offer their single reading.
func (c *Chord) GetRepresentations() ([]model.ChordRepresentation, int) {
	if sel, ok := c.observer.(RepresentationSelector); ok {
		return sel.GetRepresentations(), sel.GetRepresentationIndex()
	}
	if rep, err := c.GetRepresentation(); err == nil {
		return []model.ChordRepresentation{rep}, 0
	}
	return nil, 0
}

// SelectRepresentation picks one of the readings from GetRepresentations.
func (c *Chord) SelectRepresentation(index int) error {
	if c.observer == nil {
		return ErrNoObserver
	}
	sel, ok := c.observer.(RepresentationSelector)
	if !ok {
		if index == 0 {
			return nil
		}
		return errors.Wrapf(ErrRepresentationOutOfRange, "reading %d of 1", index)
	}
	return sel.SetRepresentationIndex(index)
}

func (c *Chord) TransposeBy(halfSteps int) {
	for _, n := range c.notes {
		n.TransposeBy(halfSteps)
	}
	c.notify()
}

// TransposeTo moves the whole chord so its lowest note lands on pc/octave.
func (c *Chord) TransposeTo(pc pitchclass.PitchClass, octave int) {
	lowest := c.notes[0]
	halfSteps := (octave-lowest.GetOctave())*pitchclass.NumPitchClasses + int(pc) - int(lowest.GetPitchClass())
	c.TransposeBy(halfSteps)
}

// SetQuality rebuilds the chord upward from its current lowest note. Notes
// that survive are moved in place.
func (c *Chord) SetQuality(q quality.ChordQuality) {
	lowest := c.notes[0]
	steps := quality.GetIntervals(q)
	positions := buildPositions(lowest.GetPitchClass(), lowest.GetOctave(), steps)

	if len(c.notes) > len(positions) {
		c.notes = c.notes[:len(positions)]
	}
	for i, p := range positions {
		if i < len(c.notes) {
			c.notes[i].TransposeTo(p.pitchClass, p.octave)
		} else {
			c.notes = append(c.notes, note.New(p.pitchClass, p.octave))
		}
	}

	c.intervals = steps
	c.quality = q
	c.hasQuality = true
	c.notify()
}

// Invert applies n single inversions: up for positive n, down for negative.
// Invert(0) does nothing, not even notify.
func (c *Chord) Invert(n int) {
	if n == 0 {
		return
	}
	c.invert(n)
	c.notify()
}

// invert takes whole cycles of a close voicing as a single octave shift, so
// the work is bounded by the number of notes.
func (c *Chord) invert(n int) {
	if numNotes := len(c.notes); numNotes > 0 && c.isClose() {
		if cycles := n / numNotes; cycles != 0 {
			for _, nt := range c.notes {
				nt.TransposeBy(cycles * pitchclass.NumPitchClasses)
			}
			n %= numNotes
		}
	}
	for ; n > 0; n-- {
		c.invertUp()
	}
	for ; n < 0; n++ {
		c.invertDown()
	}
}

// isClose reports whether the notes are distinct and fit inside an octave.
// Inverting such a chord once per note moves it up exactly one octave.
func (c *Chord) isClose() bool {
	for _, i := range c.intervals {
		if i <= 0 {
			return false
		}
	}
	return util.Sum(c.intervals) < pitchclass.NumPitchClasses
}

// octaveShift is how far an extremal note must travel to clear the rest of the
// chord. For anything narrower than an octave that is exactly 12.
func octaveShift(span int) int {
	return (span/pitchclass.NumPitchClasses + 1) * pitchclass.NumPitchClasses
}

func (c *Chord) invertUp() {
	span := util.Sum(c.intervals)
	shift := octaveShift(span)

	lowest := c.notes[0]
	lowest.TransposeBy(shift)
	c.notes = append(c.notes[1:], lowest)

	if len(c.intervals) > 0 {
		c.intervals = append(c.intervals[1:], shift-span)
	}
}

func (c *Chord) invertDown() {
	span := util.Sum(c.intervals)
	shift := octaveShift(span)

	last := len(c.notes) - 1
	highest := c.notes[last]
	highest.TransposeBy(-shift)
	c.notes = append([]*note.Note{highest}, c.notes[:last]...)

	if len(c.intervals) > 0 {
		c.intervals = append([]int{shift - span}, c.intervals[:len(c.intervals)-1]...)
	}
}

func (c *Chord) GetNumNotes() int {
	return len(c.notes)
}

func (c *Chord) checkIndex(index int) {
	if index < 0 || index >= len(c.notes) {
		panic(errors.Wrapf(ErrNoteOutOfRange, "index %d, %d notes", index, len(c.notes)))
	}
}

func (c *Chord) GetPitchClassAt(index int) pitchclass.PitchClass {
	c.checkIndex(index)
	return c.notes[index].GetPitchClass()
}

func (c *Chord) GetOctaveAt(index int) int {
	c.checkIndex(index)
	return c.notes[index].GetOctave()
}

// GetNotes returns copies; mutate the chord through its methods.
func (c *Chord) GetNotes() []*note.Note {
	res := make([]*note.Note, len(c.notes))
	for i, n := range c.notes {
		res[i] = n.Clone()
	}
	return res
}

func (c *Chord) GetIntervals() []int {
	res := make([]int, len(c.intervals))
	copy(res, c.intervals)
	return res
}

// GetQuality is the quality last applied through New or SetQuality. Chords
// built from raw notes report false until one is set.
func (c *Chord) GetQuality() (quality.ChordQuality, bool) {
	return c.quality, c.hasQuality
}

func (c *Chord) GetPlaybackStyle() PlaybackStyle {
	return c.playbackStyle
}

func (c *Chord) SetPlaybackStyle(style PlaybackStyle) {
	c.playbackStyle = style
}

// MidiKeys lists the notes as MIDI keys, lowest first.
func (c *Chord) MidiKeys() model.Notes {
	keys := make(model.Notes, len(c.notes))
	for i, n := range c.notes {
		keys[i] = n.MidiKey()
	}
	return keys
}

// CreateChordKey is a stable textual id for the voicing, e.g. "60-64-67".
func (c *Chord) CreateChordKey() string {
	keys := c.MidiKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "-")
}

func (c *Chord) String() string {
	parts := make([]string, len(c.notes))
	for i, n := range c.notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}
