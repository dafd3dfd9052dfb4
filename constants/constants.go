package constants

import "os"

func GetConfigPath() string {
	path := os.Getenv("CHORDGEN_CONFIG")
	if path != "" {
		return path
	}
	return "./chordgen.yaml"
}

func GetPort() string {
	port := os.Getenv("CHORDGEN_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// MaxChords is what fits on one row of the editor, not a music theory limit.
const MaxChords = 7

const DefaultNumChords = 4

// MIDI export resolution and chord length
const TicksPerQuarter = 96

const BeatsPerChord = 4

// MaxInversionSteps bounds a single invert request in either direction.
const MaxInversionSteps = 64
