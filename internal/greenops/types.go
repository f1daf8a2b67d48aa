// Package greenops turns lifecycle CO2 figures into display text: grouped
// numbers ("91,250") and relatable equivalencies ("~26,042 miles driven")
// based on EPA greenhouse gas equivalency factors.
package greenops

import "fmt"

// EquivalencyKind is a category of CO2 equivalency.
type EquivalencyKind int

const (
	// MilesDriven is miles driven by an average passenger vehicle.
	MilesDriven EquivalencyKind = iota
	// SmartphonesCharged is full smartphone charges.
	SmartphonesCharged
	// TreeSeedlings is tree seedlings grown for ten years.
	TreeSeedlings
)

func (k EquivalencyKind) String() string {
	switch k {
	case MilesDriven:
		return "MilesDriven"
	case SmartphonesCharged:
		return "SmartphonesCharged"
	case TreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyKind(%d)", int(k))
	}
}

// Equivalency is one calculated equivalency.
type Equivalency struct {
	Kind      EquivalencyKind
	Value     float64
	Formatted string
	Label     string
}

// Summary holds every equivalency for one CO2 amount.
type Summary struct {
	InputKg float64
	Items   []Equivalency

	// DisplayText is the prose line, e.g.
	// "Equivalent to driving ~26,042 miles or charging ~608,273 smartphones".
	DisplayText string
	// CompactText is the short form for chart legends, e.g. "(≈ 26,042 mi, 83 seedlings)".
	CompactText string
	// Empty is set when the amount is too small to be worth describing.
	Empty bool
}
