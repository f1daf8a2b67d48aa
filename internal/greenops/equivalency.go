package greenops

import (
	"fmt"
	"math"
)

// Calculate describes kg of CO2e as miles driven, smartphone charges and
// tree seedlings. Amounts below MinEquivalencyThresholdKg return an Empty
// summary and no error.
func Calculate(kg float64) (Summary, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return Summary{Empty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return Summary{Empty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return Summary{InputKg: kg, Empty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	seedlings := kg / EPATreeSeedlingFactor
	if math.IsInf(phones, 0) {
		return Summary{Empty: true}, ErrCalculationOverflow
	}

	items := []Equivalency{
		{Kind: MilesDriven, Value: miles, Formatted: formatEquivalency(miles), Label: "miles driven"},
		{Kind: SmartphonesCharged, Value: phones, Formatted: formatEquivalency(phones), Label: "smartphones charged"},
		{Kind: TreeSeedlings, Value: seedlings, Formatted: formatEquivalency(seedlings), Label: "tree seedlings grown for 10 years"},
	}

	return Summary{
		InputKg: kg,
		Items:   items,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			items[0].Formatted, items[1].Formatted),
		CompactText: fmt.Sprintf("(≈ %s mi, %s seedlings)", items[0].Formatted, items[2].Formatted),
	}, nil
}

func formatEquivalency(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
