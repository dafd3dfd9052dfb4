package quality

// ChordQualityType groups qualities that share an inversion figure table.
type ChordQualityType int

const (
	Triad ChordQualityType = iota
	Seventh
	Other
)

// InversionDescriptors are the figured-bass numbers for one inversion,
// e.g. upper "6" over lower "4".
type InversionDescriptors struct {
	Upper string
	Lower string
}

var inversionDescriptorMap = map[ChordQualityType][]InversionDescriptors{
	Triad: {
		{Upper: "", Lower: ""},
		{Upper: "6", Lower: ""},
		{Upper: "6", Lower: "4"},
	},
	Seventh: {
		{Upper: "", Lower: ""},
		{Upper: "65", Lower: ""},
		{Upper: "43", Lower: ""},
		{Upper: "42", Lower: ""},
	},
}

// GetInversionDescriptors returns false for Other and for inversions the
// table does not cover.
func GetInversionDescriptors(t ChordQualityType, inversion int) (InversionDescriptors, bool) {
	table, ok := inversionDescriptorMap[t]
	if !ok || inversion < 0 || inversion >= len(table) {
		return InversionDescriptors{}, false
	}
	return table[inversion], true
}

func (t ChordQualityType) String() string {
	switch t {
	case Triad:
		return "triad"
	case Seventh:
		return "seventh"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}
