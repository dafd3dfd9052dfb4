package quality

import (
	"strings"

	"github.com/jsphweid/chordgen/util"
	"github.com/pkg/errors"
)

type ChordQuality int

const (
	MajorTriad ChordQuality = iota
	MinorTriad
	DiminishedTriad
	AugmentedTriad
	SuspendedTwo
	SuspendedFour
	MajorMajorSeven
	MajorMinorSeven
	MinorMajorSeven
	MinorMinorSeven
	HalfDiminishedSeven
	DiminishedSeven
)

const DominantSeven = MajorMinorSeven

var ErrUnknownQuality = errors.New("unknown chord quality")

// SymbolDescriptors decorate a root symbol: prefix + root + suffix, with the
// figures stacked to the right.
type SymbolDescriptors struct {
	Prefix string
	Suffix string
	Upper  string
	Lower  string
}

type info struct {
	key         string
	name        string
	steps       []int
	qualityType ChordQualityType
	isLowercase bool
	// the suffix already marks the chord as minor, so roman numerals drop it
	hasMinorSymbol bool
	symbols        SymbolDescriptors
}

var chordQualityMap = map[ChordQuality]info{
	MajorTriad: {
		key: "maj", name: "major", steps: []int{4, 3}, qualityType: Triad,
	},
	MinorTriad: {
		key: "min", name: "minor", steps: []int{3, 4}, qualityType: Triad,
		isLowercase: true, hasMinorSymbol: true,
		symbols: SymbolDescriptors{Suffix: "m"},
	},
	DiminishedTriad: {
		key: "dim", name: "diminished", steps: []int{3, 3}, qualityType: Triad,
		isLowercase: true,
		symbols:     SymbolDescriptors{Suffix: "°"},
	},
	AugmentedTriad: {
		key: "aug", name: "augmented", steps: []int{4, 4}, qualityType: Triad,
		symbols: SymbolDescriptors{Suffix: "+"},
	},
	SuspendedTwo: {
		key: "sus2", name: "suspended two", steps: []int{2, 5}, qualityType: Other,
		symbols: SymbolDescriptors{Upper: "sus2"},
	},
	SuspendedFour: {
		key: "sus4", name: "suspended four", steps: []int{5, 2}, qualityType: Other,
		symbols: SymbolDescriptors{Upper: "sus4"},
	},
	MajorMajorSeven: {
		key: "maj7", name: "major seven", steps: []int{4, 3, 4}, qualityType: Seventh,
		symbols: SymbolDescriptors{Upper: "maj7"},
	},
	MajorMinorSeven: {
		key: "7", name: "dominant seven", steps: []int{4, 3, 3}, qualityType: Seventh,
		symbols: SymbolDescriptors{Upper: "7"},
	},
	MinorMajorSeven: {
		key: "mmaj7", name: "minor major seven", steps: []int{3, 4, 4}, qualityType: Seventh,
		isLowercase: true, hasMinorSymbol: true,
		symbols: SymbolDescriptors{Suffix: "m", Upper: "maj7"},
	},
	MinorMinorSeven: {
		key: "m7", name: "minor seven", steps: []int{3, 4, 3}, qualityType: Seventh,
		isLowercase: true, hasMinorSymbol: true,
		symbols: SymbolDescriptors{Suffix: "m", Upper: "7"},
	},
	HalfDiminishedSeven: {
		key: "m7b5", name: "half diminished seven", steps: []int{3, 3, 4}, qualityType: Seventh,
		isLowercase: true,
		symbols:     SymbolDescriptors{Suffix: "ø", Upper: "7"},
	},
	DiminishedSeven: {
		key: "dim7", name: "diminished seven", steps: []int{3, 3, 3}, qualityType: Seventh,
		isLowercase: true,
		symbols:     SymbolDescriptors{Suffix: "°", Upper: "7"},
	},
}

// All lists the supported qualities in table order. Representation search
// walks them in this order.
func All() []ChordQuality {
	return util.GetKeys(chordQualityMap)
}

func IsSupported(q ChordQuality) bool {
	_, ok := chordQualityMap[q]
	return ok
}

// GetIntervals returns the half steps between consecutive chord tones in root
// position. The slice is a copy.
func GetIntervals(q ChordQuality) []int {
	steps := chordQualityMap[q].steps
	res := make([]int, len(steps))
	copy(res, steps)
	return res
}

func GetType(q ChordQuality) ChordQualityType {
	return chordQualityMap[q].qualityType
}

func GetSymbolDescriptors(q ChordQuality) SymbolDescriptors {
	return chordQualityMap[q].symbols
}

func IsLowercase(q ChordQuality) bool {
	return chordQualityMap[q].isLowercase
}

func HasMinorSymbol(q ChordQuality) bool {
	return chordQualityMap[q].hasMinorSymbol
}

func (q ChordQuality) Name() string {
	return chordQualityMap[q].name
}

// Key is the short identifier used by the HTTP API and CLI flags.
func (q ChordQuality) Key() string {
	return chordQualityMap[q].key
}

func (q ChordQuality) String() string {
	if !IsSupported(q) {
		return "unknown"
	}
	return q.Key()
}

func (q ChordQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Parse accepts either the key ("m7") or the full name ("minor seven").
func Parse(s string) (ChordQuality, error) {
	trimmed := strings.TrimSpace(s)
	for _, q := range All() {
		i := chordQualityMap[q]
		if trimmed == i.key || strings.EqualFold(trimmed, i.name) {
			return q, nil
		}
	}
	return MajorTriad, errors.Wrapf(ErrUnknownQuality, "%q", s)
}
