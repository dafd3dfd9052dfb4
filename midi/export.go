package midi

import (
	"io"
	"os"
	"sort"

	"github.com/jsphweid/chordgen/chord"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const channel = 0

type ExportOptions struct {
	TicksPerQuarter uint16
	BeatsPerChord   int
	Velocity        uint8
	BPM             float64
}

var DefaultExportOptions = ExportOptions{
	TicksPerQuarter: 96,
	BeatsPerChord:   4,
	Velocity:        90,
	BPM:             120,
}

type timedEvent struct {
	tick      uint32
	isNoteOff bool
	key       uint8
}

// chordEvents lays out one chord starting at start according to its
// playback style.
func chordEvents(c *chord.Chord, start uint32, length uint32) []timedEvent {
	keys := c.MidiKeys()
	n := uint32(len(keys))
	step := length / n
	end := start + length

	var events []timedEvent
	switch c.GetPlaybackStyle() {
	case chord.ArpeggioUp, chord.ArpeggioDown:
		if c.GetPlaybackStyle() == chord.ArpeggioDown {
			reversed := make([]uint8, len(keys))
			for i, k := range keys {
				reversed[len(keys)-1-i] = k
			}
			keys = reversed
		}
		for i, k := range keys {
			events = append(events,
				timedEvent{tick: start + uint32(i)*step, key: k},
				timedEvent{tick: end, isNoteOff: true, key: k},
			)
		}
	case chord.Broken:
		for i, k := range keys {
			on := start + uint32(i)*step
			off := on + step
			if i == len(keys)-1 {
				off = end
			}
			events = append(events,
				timedEvent{tick: on, key: k},
				timedEvent{tick: off, isNoteOff: true, key: k},
			)
		}
	default:
		for _, k := range keys {
			events = append(events,
				timedEvent{tick: start, key: k},
				timedEvent{tick: end, isNoteOff: true, key: k},
			)
		}
	}
	return events
}

// NewProgressionSMF renders chords back to back, one per BeatsPerChord beats.
func NewProgressionSMF(chords []*chord.Chord, opts ExportOptions) (*smf.SMF, error) {
	if opts.TicksPerQuarter == 0 || opts.BeatsPerChord <= 0 {
		return nil, errors.Errorf("invalid export options %+v", opts)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(opts.BPM))
	tempo.Close(0)
	if err := s.Add(tempo); err != nil {
		return nil, errors.Wrap(err, "error adding tempo track")
	}

	length := uint32(opts.TicksPerQuarter) * uint32(opts.BeatsPerChord)
	var events []timedEvent
	for i, c := range chords {
		events = append(events, chordEvents(c, uint32(i)*length, length)...)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})

	var track smf.Track
	var last uint32
	for _, evt := range events {
		delta := evt.tick - last
		last = evt.tick
		if evt.isNoteOff {
			track.Add(delta, midi.NoteOff(channel, evt.key))
		} else {
			track.Add(delta, midi.NoteOn(channel, evt.key, opts.Velocity))
		}
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "error adding chord track")
	}
	return s, nil
}

func WriteProgression(w io.Writer, chords []*chord.Chord, opts ExportOptions) error {
	s, err := NewProgressionSMF(chords, opts)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "error writing midi")
	}
	return nil
}

func WriteProgressionFile(path string, chords []*chord.Chord, opts ExportOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", path)
	}
	defer f.Close()
	return WriteProgression(f, chords, opts)
}
