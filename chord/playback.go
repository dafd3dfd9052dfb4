package chord

// PlaybackStyle is carried for the UI and the MIDI renderer; it never changes
// which notes a chord holds.
type PlaybackStyle int

const (
	Block PlaybackStyle = iota
	ArpeggioUp
	ArpeggioDown
	Broken
)

func AllPlaybackStyles() []PlaybackStyle {
	return []PlaybackStyle{Block, ArpeggioUp, ArpeggioDown, Broken}
}

func (p PlaybackStyle) String() string {
	switch p {
	case Block:
		return "block"
	case ArpeggioUp:
		return "arpeggio-up"
	case ArpeggioDown:
		return "arpeggio-down"
	case Broken:
		return "broken"
	default:
		return "unknown"
	}
}
