// Package render derives everything a result screen shows from a comparison
// result. Build is a pure function of its inputs; drawing is left to the
// terminal front ends.
package render

import (
	"context"
	"fmt"
	"math"

	"github.com/carbonwise/carbonwise/internal/greenops"
	"github.com/carbonwise/carbonwise/internal/logging"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// MaxPerList is the number of records the ranking service returns per list.
const MaxPerList = 3

// totalTolerance is the allowed drift between a record's total and the sum
// of its components before it is logged.
const totalTolerance = 0.01

// SectionKey identifies one of the four ranked lists.
type SectionKey int

const (
	// SectionOverall is the overall lowest-emission ranking.
	SectionOverall SectionKey = iota
	// SectionICE is the petrol/diesel ranking.
	SectionICE
	// SectionEV is the battery-electric ranking.
	SectionEV
	// SectionHybrid is the hybrid ranking.
	SectionHybrid
)

// Section titles.
const (
	TitleOverall = "Top 3 Lowest Emission Vehicles (2023–2026)"
	TitleICE     = "Top 3 Petrol / Diesel Vehicles"
	TitleEV      = "Top 3 Electric Vehicles"
	TitleHybrid  = "Top 3 Hybrid Vehicles"
	TitleChart   = "CO₂ Emissions Breakdown"
	TitleSummary = "Analysis Summary"
)

// Rank decorations.
const (
	MarkerFirst  = "🥇"
	MarkerSecond = "🥈"
	MarkerThird  = "🥉"
	BadgeLowest  = "Lowest Emissions"
)

func (k SectionKey) String() string {
	switch k {
	case SectionOverall:
		return "overall"
	case SectionICE:
		return "petrol_diesel"
	case SectionEV:
		return "ev"
	case SectionHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("SectionKey(%d)", int(k))
	}
}

// Title returns the heading shown above the section.
func (k SectionKey) Title() string {
	switch k {
	case SectionOverall:
		return TitleOverall
	case SectionICE:
		return TitleICE
	case SectionEV:
		return TitleEV
	case SectionHybrid:
		return TitleHybrid
	default:
		return ""
	}
}

// Card is one ranked vehicle.
type Card struct {
	// Rank is 1-based.
	Rank   int
	Marker string
	Badge  string
	Record vehicle.Record
}

// Section is one ranked list and whether it is shown.
type Section struct {
	Key     SectionKey
	Title   string
	Visible bool
	Cards   []Card
}

// Bar is one entry in the emissions breakdown chart.
type Bar struct {
	Label         string
	Section       SectionKey
	Manufacturing float64
	UsePhase      float64
	Total         float64
	// Legend is the compact equivalency of Total, "" when too small to describe.
	Legend string
}

// Summary is the analysis summary block.
type Summary struct {
	LifetimeKm     float64
	DailyMileage   float64
	OwnershipYears float64
	Segment        vehicle.Segment
	// TopCO2Kg is the best overall vehicle's lifecycle total, 0 when the
	// overall list is empty.
	TopCO2Kg float64

	LifetimeText     string
	DailyMileageText string
	OwnershipText    string
	TopCO2Text       string
	// Equivalency is the relatable description of TopCO2Kg, "" when too small.
	Equivalency string
}

// View is everything a result screen shows.
type View struct {
	// Sections is always in overall, petrol/diesel, EV, hybrid order.
	Sections []Section
	// Chart concatenates the four lists in section order.
	Chart   []Bar
	Summary Summary
}

// Decoration returns the rank marker and badge for a zero-based position.
// Positions past the third have neither.
func Decoration(index int) (marker, badge string) {
	switch index {
	case 0:
		return MarkerFirst, BadgeLowest
	case 1:
		return MarkerSecond, ""
	case 2:
		return MarkerThird, ""
	default:
		return "", ""
	}
}

// Build derives the view for res, echoing input in the summary. Lists longer
// than MaxPerList and records whose total disagrees with its components are
// logged and shown as given.
func Build(ctx context.Context, res vehicle.Result, input vehicle.Request) View {
	lists := [...]struct {
		key     SectionKey
		records []vehicle.Record
	}{
		{SectionOverall, res.OverallTop3},
		{SectionICE, res.ICETop3},
		{SectionEV, res.EVTop3},
		{SectionHybrid, res.HybridTop3},
	}

	view := View{Sections: make([]Section, 0, len(lists))}
	for _, l := range lists {
		checkList(ctx, l.key, l.records)

		section := Section{
			Key:     l.key,
			Title:   l.key.Title(),
			Visible: len(l.records) > 0,
			Cards:   make([]Card, 0, len(l.records)),
		}
		for i, r := range l.records {
			marker, badge := Decoration(i)
			section.Cards = append(section.Cards, Card{Rank: i + 1, Marker: marker, Badge: badge, Record: r})
			view.Chart = append(view.Chart, Bar{
				Label:         r.Name(),
				Section:       l.key,
				Manufacturing: r.ManufacturingCO2,
				UsePhase:      r.UsePhaseCO2,
				Total:         r.TotalLifecycleCO2,
				Legend:        compactEquivalency(r.TotalLifecycleCO2),
			})
		}
		view.Sections = append(view.Sections, section)
	}

	view.Summary = buildSummary(ctx, res, input)
	return view
}

func buildSummary(ctx context.Context, res vehicle.Result, input vehicle.Request) Summary {
	var top float64
	if len(res.OverallTop3) > 0 {
		top = res.OverallTop3[0].TotalLifecycleCO2
	}

	s := Summary{
		LifetimeKm:       res.LifetimeKm,
		DailyMileage:     input.DailyMileage,
		OwnershipYears:   input.OwnershipYears,
		Segment:          input.Segment,
		TopCO2Kg:         top,
		LifetimeText:     greenops.FormatDistance(res.LifetimeKm) + " km",
		DailyMileageText: greenops.FormatDistance(input.DailyMileage) + " km/day",
		OwnershipText:    greenops.FormatDistance(input.OwnershipYears) + " years",
		TopCO2Text:       greenops.FormatKg(top) + " kg",
	}

	eq, err := greenops.Calculate(top)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Err(err).Float64("kg", top).Msg("equivalency calculation failed")
		return s
	}
	if !eq.Empty {
		s.Equivalency = eq.DisplayText
	}
	return s
}

func compactEquivalency(kg float64) string {
	eq, err := greenops.Calculate(kg)
	if err != nil || eq.Empty {
		return ""
	}
	return eq.CompactText
}

func checkList(ctx context.Context, key SectionKey, records []vehicle.Record) {
	logger := logging.FromContext(ctx)
	if len(records) > MaxPerList {
		logger.Warn().Ctx(ctx).
			Str("section", key.String()).
			Int("count", len(records)).
			Msg("ranked list longer than expected")
	}
	for i, r := range records {
		if math.Abs(r.ManufacturingCO2+r.UsePhaseCO2-r.TotalLifecycleCO2) > totalTolerance {
			logger.Warn().Ctx(ctx).
				Str("section", key.String()).
				Int("index", i).
				Str("vehicle", r.Name()).
				Float64("manufacturing_co2", r.ManufacturingCO2).
				Float64("use_phase_co2", r.UsePhaseCO2).
				Float64("total_lifecycle_co2", r.TotalLifecycleCO2).
				Msg("lifecycle total does not match its components")
		}
	}
}
