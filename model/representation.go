package model

import "github.com/jsphweid/chordgen/accidental"

// NoteRepresentation is how a single pitch class is written in one notation.
type NoteRepresentation struct {
	Name       string                `json:"name"`
	Symbol     string                `json:"symbol"`
	Accidental accidental.Accidental `json:"accidental"`
}

// PitchRepresentation is a scale's view of one pitch class in both notations.
type PitchRepresentation struct {
	Alphabetical NoteRepresentation `json:"alphabetical"`
	Roman        NoteRepresentation `json:"roman"`
}

// NotationRepresentation is everything the UI needs to draw a chord label.
type NotationRepresentation struct {
	Name        string                `json:"name"`
	Symbol      string                `json:"symbol"`
	Accidental  accidental.Accidental `json:"accidental"`
	LowerFigure string                `json:"lower_figure"`
	UpperFigure string                `json:"upper_figure"`
	BassFigure  string                `json:"bass_figure"`
}

type ChordRepresentation struct {
	Alphabetical NotationRepresentation `json:"alphabetical"`
	Roman        NotationRepresentation `json:"roman"`
}
