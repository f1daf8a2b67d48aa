package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonwise/carbonwise/internal/vehicle"
)

func acmeEV1() vehicle.Record {
	return vehicle.Record{
		Make: "Acme", Model: "EV1", Year: 2024,
		ManufacturingCO2: 4000, UsePhaseCO2: 1000, TotalLifecycleCO2: 5000,
	}
}

func rec(model string, m, u float64) vehicle.Record {
	return vehicle.Record{Make: "Test", Model: model, Year: 2025, ManufacturingCO2: m, UsePhaseCO2: u, TotalLifecycleCO2: m + u}
}

var acmeInput = vehicle.Request{DailyMileage: 50, OwnershipYears: 5, Segment: "Sedan"}

func TestBuild_AcmeScenario(t *testing.T) {
	res := vehicle.Result{
		LifetimeKm:  91250,
		OverallTop3: []vehicle.Record{acmeEV1()},
		ICETop3:     []vehicle.Record{},
		EVTop3:      []vehicle.Record{acmeEV1()},
		HybridTop3:  []vehicle.Record{},
	}

	v := Build(context.Background(), res, acmeInput)

	require.Len(t, v.Sections, 4)
	visible := make(map[SectionKey]bool)
	for _, s := range v.Sections {
		visible[s.Key] = s.Visible
	}
	assert.Equal(t, map[SectionKey]bool{
		SectionOverall: true,
		SectionICE:     false,
		SectionEV:      true,
		SectionHybrid:  false,
	}, visible)

	overall := v.Sections[0]
	require.Len(t, overall.Cards, 1)
	assert.Equal(t, 1, overall.Cards[0].Rank)
	assert.Equal(t, MarkerFirst, overall.Cards[0].Marker)
	assert.Equal(t, BadgeLowest, overall.Cards[0].Badge)
	assert.Equal(t, "Acme EV1", overall.Cards[0].Record.Name())

	require.Len(t, v.Chart, 2)
	assert.Equal(t, SectionOverall, v.Chart[0].Section)
	assert.Equal(t, SectionEV, v.Chart[1].Section)
	assert.InDelta(t, 4000, v.Chart[0].Manufacturing, 0)
	assert.InDelta(t, 1000, v.Chart[0].UsePhase, 0)

	assert.Equal(t, "91,250 km", v.Summary.LifetimeText)
	assert.Equal(t, "5000 kg", v.Summary.TopCO2Text)
	assert.Equal(t, "50 km/day", v.Summary.DailyMileageText)
	assert.Equal(t, "5 years", v.Summary.OwnershipText)
	assert.Equal(t, vehicle.Segment("Sedan"), v.Summary.Segment)
	assert.Equal(t, "Equivalent to driving ~26,042 miles or charging ~608,273 smartphones", v.Summary.Equivalency)
}

func TestBuild_SectionOrderAndTitles(t *testing.T) {
	v := Build(context.Background(), vehicle.Result{}, acmeInput)

	require.Len(t, v.Sections, 4)
	assert.Equal(t, TitleOverall, v.Sections[0].Title)
	assert.Equal(t, TitleICE, v.Sections[1].Title)
	assert.Equal(t, TitleEV, v.Sections[2].Title)
	assert.Equal(t, TitleHybrid, v.Sections[3].Title)
	for _, s := range v.Sections {
		assert.False(t, s.Visible, s.Key.String())
		assert.Empty(t, s.Cards)
	}
	assert.Empty(t, v.Chart)
}

func TestBuild_EmptyOverallSummary(t *testing.T) {
	res := vehicle.Result{LifetimeKm: 0, EVTop3: []vehicle.Record{acmeEV1()}}

	v := Build(context.Background(), res, acmeInput)

	assert.Zero(t, v.Summary.TopCO2Kg)
	assert.Equal(t, "0 kg", v.Summary.TopCO2Text)
	assert.Equal(t, "0 km", v.Summary.LifetimeText)
	assert.Empty(t, v.Summary.Equivalency)
}

func TestBuild_HugeInputsKeepTheirDigits(t *testing.T) {
	res := vehicle.Result{LifetimeKm: 3.65e23, OverallTop3: []vehicle.Record{acmeEV1()}}
	input := vehicle.Request{DailyMileage: 1e20, OwnershipYears: 1e19, Segment: "Sedan"}

	v := Build(context.Background(), res, input)

	assert.Equal(t, "365,000,000,000,000,000,000,000 km", v.Summary.LifetimeText)
	assert.Equal(t, "100,000,000,000,000,000,000 km/day", v.Summary.DailyMileageText)
	assert.Equal(t, "10,000,000,000,000,000,000 years", v.Summary.OwnershipText)
}

func TestBuild_ChartLegends(t *testing.T) {
	res := vehicle.Result{
		LifetimeKm:  91250,
		OverallTop3: []vehicle.Record{acmeEV1(), rec("Tiny", 0.2, 0.1)},
	}

	v := Build(context.Background(), res, acmeInput)

	require.Len(t, v.Chart, 2)
	assert.Equal(t, "(≈ 26,042 mi, 83 seedlings)", v.Chart[0].Legend)
	assert.Empty(t, v.Chart[1].Legend)
}

func TestBuild_ChartConcatenation(t *testing.T) {
	res := vehicle.Result{
		LifetimeKm:  1000,
		OverallTop3: []vehicle.Record{rec("A", 1, 1), rec("B", 2, 2), rec("C", 3, 3)},
		ICETop3:     []vehicle.Record{rec("D", 4, 4)},
		EVTop3:      []vehicle.Record{rec("E", 5, 5), rec("F", 6, 6)},
		HybridTop3:  []vehicle.Record{rec("G", 7, 7), rec("H", 8, 8), rec("I", 9, 9)},
	}

	v := Build(context.Background(), res, acmeInput)

	labels := make([]string, 0, len(v.Chart))
	for _, b := range v.Chart {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{
		"Test A", "Test B", "Test C",
		"Test D",
		"Test E", "Test F",
		"Test G", "Test H", "Test I",
	}, labels)
}

func TestDecoration(t *testing.T) {
	tests := []struct {
		index  int
		marker string
		badge  string
	}{
		{0, MarkerFirst, BadgeLowest},
		{1, MarkerSecond, ""},
		{2, MarkerThird, ""},
		{3, "", ""},
		{10, "", ""},
	}
	for _, tt := range tests {
		marker, badge := Decoration(tt.index)
		assert.Equal(t, tt.marker, marker, "index %d", tt.index)
		assert.Equal(t, tt.badge, badge, "index %d", tt.index)
	}
}

func TestBuild_LogsUnexpectedShapes(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	mismatch := acmeEV1()
	mismatch.TotalLifecycleCO2 = 4500
	res := vehicle.Result{
		LifetimeKm:  10,
		OverallTop3: []vehicle.Record{mismatch},
		EVTop3:      []vehicle.Record{rec("A", 1, 1), rec("B", 1, 1), rec("C", 1, 1), rec("D", 1, 1)},
	}

	v := Build(ctx, res, acmeInput)

	out := buf.String()
	assert.Contains(t, out, "lifecycle total does not match its components")
	assert.Contains(t, out, "ranked list longer than expected")

	// Shown as given.
	assert.Len(t, v.Sections[2].Cards, 4)
	assert.Empty(t, v.Sections[2].Cards[3].Marker)
	assert.Equal(t, "4500 kg", v.Summary.TopCO2Text)
}

func TestSectionKey_String(t *testing.T) {
	assert.Equal(t, "overall", SectionOverall.String())
	assert.Equal(t, "petrol_diesel", SectionICE.String())
	assert.Equal(t, "ev", SectionEV.String())
	assert.Equal(t, "hybrid", SectionHybrid.String())
	assert.Equal(t, "SectionKey(4)", SectionKey(4).String())
	assert.Empty(t, SectionKey(4).Title())
}
