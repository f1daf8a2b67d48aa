// Package vehicle holds the domain model shared by the transport client,
// the comparison session and the renderers.
package vehicle

// Segment names a market category such as "SUV (Small)". The set of valid
// segments comes from the ranking service; the client never hard-codes it.
type Segment string

// Request is a validated comparison request.
type Request struct {
	DailyMileage   float64
	OwnershipYears float64
	Segment        Segment
}

// Record is one ranked vehicle. TotalLifecycleCO2 is expected to equal
// ManufacturingCO2 + UsePhaseCO2; the service computes it and the client
// displays it as given. All CO2 values are kilograms.
type Record struct {
	Make              string
	Model             string
	Year              int
	ManufacturingCO2  float64
	UsePhaseCO2       float64
	TotalLifecycleCO2 float64
}

// Name returns "Make Model".
func (r Record) Name() string {
	return r.Make + " " + r.Model
}

// Result is the ranking service's answer. Each list holds at most three
// records ordered ascending by TotalLifecycleCO2.
type Result struct {
	LifetimeKm  float64
	OverallTop3 []Record
	ICETop3     []Record
	EVTop3      []Record
	HybridTop3  []Record
}

// Health is the ranking service status payload.
type Health struct {
	Status        string
	DatasetLoaded bool
	TotalVehicles int
}

// Healthy reports whether the service says it is usable.
func (h Health) Healthy() bool {
	return h.Status == "healthy" && h.DatasetLoaded
}
