package scale

import (
	"strings"

	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
)

// ReferentialScale is the diatonic pattern used to name scale degrees. It
// never affects which notes a chord contains.
type ReferentialScale int

const (
	IonianMajor ReferentialScale = iota
	IonianNaturalMinor
)

var ErrUnknownReferentialScale = errors.New("unknown referential scale")

type referentialInfo struct {
	key   string
	name  string
	steps []int // half steps between consecutive degrees
}

var referentialScaleMap = map[ReferentialScale]referentialInfo{
	IonianMajor:        {key: "major", name: "major", steps: []int{2, 2, 1, 2, 2, 2}},
	IonianNaturalMinor: {key: "minor", name: "natural minor", steps: []int{2, 1, 2, 2, 1, 2}},
}

func AllReferentialScales() []ReferentialScale {
	return util.GetKeys(referentialScaleMap)
}

func IsSupportedReferentialScale(r ReferentialScale) bool {
	_, ok := referentialScaleMap[r]
	return ok
}

func GetReferentialScaleSteps(r ReferentialScale) []int {
	return referentialScaleMap[r].steps
}

func (r ReferentialScale) Name() string {
	return referentialScaleMap[r].name
}

func (r ReferentialScale) String() string {
	if !IsSupportedReferentialScale(r) {
		return "unknown"
	}
	return referentialScaleMap[r].key
}

func (r ReferentialScale) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseReferentialScale accepts the short key ("major") or the full name
// ("natural minor").
func ParseReferentialScale(s string) (ReferentialScale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, info := range referentialScaleMap {
		if s == info.key || s == info.name {
			return r, nil
		}
	}
	return IonianMajor, errors.Wrapf(ErrUnknownReferentialScale, "%q", s)
}
