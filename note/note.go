package note

import (
	"fmt"

	"github.com/jsphweid/chordgen/pitchclass"
	"github.com/jsphweid/chordgen/util"
)

const DefaultOctave = 4

type Note struct {
	pitchClass pitchclass.PitchClass
	octave     int
	pitch      float64
}

func New(pc pitchclass.PitchClass, octave int) *Note {
	n := &Note{pitchClass: pc, octave: octave}
	n.updatePitch()
	return n
}

// NewFromMidiKey uses the convention where key 60 is C4.
func NewFromMidiKey(key uint8) *Note {
	return New(pitchclass.Mod(int(key)), int(key)/pitchclass.NumPitchClasses-1)
}

func (n *Note) updatePitch() {
	n.pitch = pitchclass.GetPitch(n.pitchClass, n.octave)
}

func (n *Note) GetPitchClass() pitchclass.PitchClass {
	return n.pitchClass
}

func (n *Note) GetOctave() int {
	return n.octave
}

// GetPitch is the frequency in Hz.
func (n *Note) GetPitch() float64 {
	return n.pitch
}

// TransposeBy moves the note by a signed number of half steps. The octave
// follows the absolute position, so C4 down one half step is B3.
func (n *Note) TransposeBy(halfSteps int) {
	absolute := int(n.pitchClass) + halfSteps
	n.pitchClass = pitchclass.Mod(absolute)
	n.octave += util.FloorDiv(absolute, pitchclass.NumPitchClasses)
	n.updatePitch()
}

func (n *Note) TransposeTo(pc pitchclass.PitchClass, octave int) {
	n.pitchClass = pc
	n.octave = octave
	n.updatePitch()
}

// AbsoluteHalfSteps counts half steps from C0.
func (n *Note) AbsoluteHalfSteps() int {
	return n.octave*pitchclass.NumPitchClasses + int(n.pitchClass)
}

// MidiKey clamps to the 0-127 MIDI range.
func (n *Note) MidiKey() uint8 {
	key := util.Min(n.AbsoluteHalfSteps()+pitchclass.NumPitchClasses, 127)
	if key < 0 {
		return 0
	}
	return uint8(key)
}

func (n *Note) Clone() *Note {
	c := *n
	return &c
}

func (n *Note) String() string {
	return fmt.Sprintf("%v%d", n.pitchClass, n.octave)
}
