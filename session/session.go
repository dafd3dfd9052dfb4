package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/constants"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/progression"
	"github.com/jsphweid/chordgen/quality"
	"github.com/jsphweid/chordgen/scale"
	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrTooManySteps = errors.New("too many inversion steps")

// Session is one user's editor state: a progression plus the octave new
// chords start in. It is not safe for concurrent use; Store serialises
// access.
type Session struct {
	id          string
	progression *progression.ChordProgression
	octave      int
	lastUsed    time.Time
}

func New(s *scale.Scale, octave int) *Session {
	return &Session{
		id:          uuid.New().String(),
		progression: progression.New(s),
		octave:      octave,
	}
}

// NewRandom starts a session with numChords random chords in the key.
func NewRandom(s *scale.Scale, octave int, numChords int, r *rand.Rand) (*Session, error) {
	sess := New(s, octave)
	for i := 0; i < numChords; i++ {
		if err := sess.AddChord(i); err != nil {
			return nil, err
		}
	}
	sess.Randomize(r)
	return sess, nil
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Progression() *progression.ChordProgression {
	return s.progression
}

// AddChord inserts a root position major triad on the tonic.
func (s *Session) AddChord(index int) error {
	root := s.progression.GetScale().GetRootPitchClass()
	c := chord.New(root, s.octave, chord.DefaultQuality, 0, chord.DefaultPlaybackStyle)
	return s.progression.AddChord(index, c)
}

func (s *Session) RemoveChord(index int) error {
	_, err := s.progression.RemoveChord(index)
	return err
}

// SetChordRootNote moves the chord so its lowest note is pc in octave.
func (s *Session) SetChordRootNote(index int, pc pitchclass.PitchClass, octave int) error {
	if !pitchclass.IsSupported(pc) {
		return errors.Wrapf(pitchclass.ErrUnknownPitchClass, "%d", pc)
	}
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	c.TransposeTo(pc, octave)
	return nil
}

func (s *Session) SetChordQuality(index int, q quality.ChordQuality) error {
	if !quality.IsSupported(q) {
		return errors.Wrapf(quality.ErrUnknownQuality, "%d", q)
	}
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	c.SetQuality(q)
	return nil
}

// InvertChord rejects more than constants.MaxInversionSteps in one go.
func (s *Session) InvertChord(index int, steps int) error {
	if steps > constants.MaxInversionSteps || steps < -constants.MaxInversionSteps {
		return errors.Wrapf(ErrTooManySteps, "%d steps", steps)
	}
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	c.Invert(steps)
	return nil
}

func (s *Session) SetKey(root pitchclass.PitchClass, referentialScale scale.ReferentialScale) error {
	return s.progression.SetKey(root, referentialScale)
}

func (s *Session) TransposeKey(halfSteps int) error {
	return s.progression.TransposeKey(halfSteps)
}

// SelectSpelling chooses how pc is written in one notation, e.g. G# or Ab,
// and relabels the whole progression.
func (s *Session) SelectSpelling(n scale.Notation, pc pitchclass.PitchClass, index int) error {
	if !pitchclass.IsSupported(pc) {
		return errors.Wrapf(pitchclass.ErrUnknownPitchClass, "%d", pc)
	}
	return s.progression.SelectSpelling(n, pc, index)
}

// SelectReading chooses between the ways one chord can be read, e.g. Csus2
// or Gsus4 over C.
func (s *Session) SelectReading(chordIndex int, reading int) error {
	c, err := s.progression.GetChord(chordIndex)
	if err != nil {
		return err
	}
	return c.SelectRepresentation(reading)
}

// CycleReading moves a chord on to its next reading.
func (s *Session) CycleReading(chordIndex int) error {
	c, err := s.progression.GetChord(chordIndex)
	if err != nil {
		return err
	}
	reps, current := c.GetRepresentations()
	if len(reps) == 0 {
		return errors.Wrapf(chord.ErrNoRepresentation, "chord %d", chordIndex)
	}
	return c.SelectRepresentation((current + 1) % len(reps))
}

// CycleSpelling moves the bass of a chord on to its next spelling in
// notation n.
func (s *Session) CycleSpelling(chordIndex int, n scale.Notation) error {
	c, err := s.progression.GetChord(chordIndex)
	if err != nil {
		return err
	}
	pc := c.GetPitchClassAt(0)
	sc := s.progression.GetScale()
	reps := sc.GetRepresentations(n, pc)
	current := sc.GetRepresentation(pc).Alphabetical
	if n == scale.Roman {
		current = sc.GetRepresentation(pc).Roman
	}
	next := 0
	for i, rep := range reps {
		if rep == current {
			next = (i + 1) % len(reps)
		}
	}
	return s.progression.SelectSpelling(n, pc, next)
}

// Randomize gives every chord a random diatonic root, quality and
// inversion through the regular setters.
func (s *Session) Randomize(r *rand.Rand) {
	degrees := s.progression.GetScale().GetReferentialScalePitchClasses()
	qualities := quality.All()
	for _, c := range s.progression.GetChords() {
		if q, ok := util.GetRandomArrayElement(r, qualities); ok {
			c.SetQuality(q)
		}
		if root, ok := util.GetRandomArrayElement(r, degrees); ok {
			c.TransposeTo(root, s.octave)
		}
		c.Invert(util.GetRandomInt(r, 0, c.GetNumNotes()-1))
	}
	logrus.WithFields(logrus.Fields{
		"session": s.id,
		"chords":  s.progression.GetNumChords(),
	}).Debug("randomized progression")
}

func chordView(c *chord.Chord) model.ChordView {
	reps, reading := c.GetRepresentations()
	view := model.ChordView{
		Voicing:       c.CreateChordKey(),
		Intervals:     c.GetIntervals(),
		PlaybackStyle: c.GetPlaybackStyle().String(),
		Readings:      len(reps),
		Reading:       reading,
	}
	for _, n := range c.GetNotes() {
		view.Notes = append(view.Notes, n.String())
	}
	if q, ok := c.GetQuality(); ok {
		view.Quality = q.Key()
	}
	if rep, err := c.GetRepresentation(); err == nil {
		view.Representation = &rep
	}
	return view
}

// View snapshots the session for the UI.
func (s *Session) View() model.ProgressionView {
	sc := s.progression.GetScale()
	view := model.ProgressionView{
		Id:               s.id,
		Key:              sc.Name(),
		ReferentialScale: sc.GetReferentialScale().String(),
		Chords:           []model.ChordView{},
	}
	for _, c := range s.progression.GetChords() {
		view.Chords = append(view.Chords, chordView(c))
	}
	return view
}

// TransposeChord shifts every note of one chord by halfSteps.
func (s *Session) TransposeChord(index int, halfSteps int) error {
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	c.TransposeBy(halfSteps)
	return nil
}

// CycleQuality moves a chord on to the next quality in table order.
func (s *Session) CycleQuality(index int) error {
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	qualities := quality.All()
	next := qualities[0]
	if q, ok := c.GetQuality(); ok {
		for i, candidate := range qualities {
			if candidate == q {
				next = qualities[(i+1)%len(qualities)]
			}
		}
	}
	c.SetQuality(next)
	return nil
}

func (s *Session) CyclePlaybackStyle(index int) error {
	c, err := s.progression.GetChord(index)
	if err != nil {
		return err
	}
	styles := chord.AllPlaybackStyles()
	for i, style := range styles {
		if style == c.GetPlaybackStyle() {
			c.SetPlaybackStyle(styles[(i+1)%len(styles)])
			return nil
		}
	}
	c.SetPlaybackStyle(chord.DefaultPlaybackStyle)
	return nil
}
