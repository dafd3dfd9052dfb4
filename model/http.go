package model

type AddChordRequestBody struct {
	Index *int `json:"index"`
}

type SetRootRequestBody struct {
	PitchClass string `json:"pitch_class"`
	Octave     *int   `json:"octave"`
}

type SetQualityRequestBody struct {
	Quality string `json:"quality"`
}

type InvertRequestBody struct {
	Steps int `json:"steps"`
}

type SetKeyRequestBody struct {
	Root             string `json:"root"`
	ReferentialScale string `json:"referential_scale"`
}

type TransposeKeyRequestBody struct {
	HalfSteps int `json:"half_steps"`
}

// SelectSpellingRequestBody picks one spelling of a pitch class; notation is
// "roman" or "alphabetical".
type SelectSpellingRequestBody struct {
	PitchClass string `json:"pitch_class"`
	Notation   string `json:"notation"`
	Index      int    `json:"index"`
}

type SelectReadingRequestBody struct {
	Reading int `json:"reading"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
