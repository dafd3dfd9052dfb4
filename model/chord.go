package model

// Notes are MIDI keys, lowest first.
type Notes = []uint8

// ChordView is the read-only snapshot of a chord handed to the UI.
type ChordView struct {
	Voicing        string               `json:"voicing"`
	Notes          []string             `json:"notes"`
	Intervals      []int                `json:"intervals"`
	Quality        string               `json:"quality"`
	PlaybackStyle  string               `json:"playback_style"`
	Representation *ChordRepresentation `json:"representation"`
	Readings       int                  `json:"readings"`
	Reading        int                  `json:"reading"`
}

type ProgressionView struct {
	Id               string      `json:"id"`
	Key              string      `json:"key"`
	ReferentialScale string      `json:"referential_scale"`
	Chords           []ChordView `json:"chords"`
}
