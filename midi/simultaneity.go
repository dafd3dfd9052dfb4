package midi

import (
	"sort"

	"github.com/jsphweid/chordgen/chord"
	"github.com/jsphweid/chordgen/model"
	"github.com/jsphweid/chordgen/note"
	"github.com/jsphweid/chordgen/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Simultaneity is the set of keys sounding right after Offset (microseconds).
type Simultaneity struct {
	Offset int64
	Notes  model.Notes
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      uint8
}

// GetSimultaneities walks every track and reports what is held down each time
// a note starts or stops. Moments with nothing held are left out.
func GetSimultaneities(s *smf.SMF) []Simultaneity {
	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    absTime,
					isNoteOff: velocity == 0,
					note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    absTime,
					isNoteOff: true,
					note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	var res []Simultaneity
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = evt.offset
		}

		current := Simultaneity{Offset: evt.offset, Notes: util.GetKeys(pressed)}
		if len(res) > 0 && res[len(res)-1].Offset == evt.offset {
			res[len(res)-1] = current
		} else {
			res = append(res, current)
		}
	}

	var sounding []Simultaneity
	for _, sim := range res {
		if len(sim.Notes) > 0 {
			sounding = append(sounding, sim)
		}
	}
	return sounding
}

func notesFromKeys(keys model.Notes) []*note.Note {
	notes := make([]*note.Note, len(keys))
	for i, k := range keys {
		notes[i] = note.NewFromMidiKey(k)
	}
	return notes
}

// ChordFromKeys voices MIDI keys as a chord with no quality applied.
func ChordFromKeys(keys model.Notes) (*chord.Chord, error) {
	return chord.NewFromNotes(notesFromKeys(keys))
}

// ClosedChordFromKeys keeps the bass and folds the other keys into the
// octave above it, which is the shape chord qualities are recognised in.
func ClosedChordFromKeys(keys model.Notes) (*chord.Chord, error) {
	return chord.NewClosedFromNotes(notesFromKeys(keys))
}
