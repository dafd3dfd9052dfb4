package midi

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies s starting at fromTick, keeping at most maxNoteEvents note
// on/off events per track (0 keeps all). Other events before fromTick are
// kept with their deltas squashed so tempo and program changes still apply.
func Excerpt(s *smf.SMF, fromTick uint64, maxNoteEvents int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var lastKept uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			isNote := evt.Message.Is(midi.NoteOnMsg) || evt.Message.Is(midi.NoteOffMsg)

			switch {
			case absTicks < fromTick && isNote:
				continue
			case absTicks < fromTick:
				evt.Delta = 0
			default:
				// first kept event lands at tick 0 of the excerpt
				from := fromTick
				if lastKept > from {
					from = lastKept
				}
				evt.Delta = uint32(absTicks - from)
				lastKept = absTicks
			}
			newTrack = append(newTrack, evt)

			if isNote {
				numNoteOnOff++
				if maxNoteEvents > 0 && numNoteOnOff >= maxNoteEvents {
					newTrack.Close(0)
					break TrackEventLoop
				}
			}
		}
		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}
