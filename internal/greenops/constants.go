package greenops

// EPA greenhouse gas equivalency factors, kg CO2e per unit.
// equivalency = kg / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile of an average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed by one seedling over ten years.
	EPATreeSeedlingFactor = 60.0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the smallest amount given equivalencies.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches to "~X.X million" notation.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches to "~X.X billion" notation.
	BillionThreshold = 1_000_000_000
)
