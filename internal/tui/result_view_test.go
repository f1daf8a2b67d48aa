package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonwise/carbonwise/internal/render"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

func TestRenderResult(t *testing.T) {
	v := render.Build(context.Background(), *acmeResult(), vehicle.Request{DailyMileage: 50, OwnershipYears: 5, Segment: "Sedan"})

	out := RenderResult(v, 120)

	assert.Contains(t, out, render.TitleSummary)
	assert.Contains(t, out, "91,250 km")
	assert.Contains(t, out, "5000 kg")
	assert.Contains(t, out, "Equivalent to driving ~26,042 miles")
	assert.Contains(t, out, render.TitleOverall)
	assert.Contains(t, out, render.TitleEV)
	assert.NotContains(t, out, render.TitleICE)
	assert.NotContains(t, out, render.TitleHybrid)
	assert.Contains(t, out, render.TitleChart)
	assert.Contains(t, out, render.BadgeLowest)
	assert.Contains(t, out, render.MarkerFirst)
}

func TestRenderCard(t *testing.T) {
	rec := acmeResult().OverallTop3[0]

	first := RenderCard(render.Card{Rank: 1, Marker: render.MarkerFirst, Badge: render.BadgeLowest, Record: rec})
	assert.Contains(t, first, "#1")
	assert.Contains(t, first, render.BadgeLowest)
	assert.Contains(t, first, "4000 kg")
	assert.Contains(t, first, "1000 kg")

	fourth := RenderCard(render.Card{Rank: 4, Record: rec})
	assert.Contains(t, fourth, "#4")
	assert.NotContains(t, fourth, render.BadgeLowest)
}

func TestBarSegments(t *testing.T) {
	tests := []struct {
		name             string
		mfg, use, peak   float64
		length           int
		wantMfg, wantUse int
	}{
		{"peak bar fills", 4000, 1000, 5000, 50, 40, 10},
		{"half bar", 1000, 1500, 5000, 50, 10, 15},
		{"zero peak", 0, 0, 0, 50, 0, 0},
		{"negative clamped", -10, 20, 20, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfg, use := barSegments(tt.mfg, tt.use, tt.peak, tt.length)
			assert.Equal(t, tt.wantMfg, mfg)
			assert.Equal(t, tt.wantUse, use)
			assert.LessOrEqual(t, mfg+use, tt.length)
		})
	}
}

func TestRenderChart_OneLinePerBar(t *testing.T) {
	bars := []render.Bar{
		{Label: "Acme EV1", Manufacturing: 4000, UsePhase: 1000, Total: 5000},
		{Label: "Acme EV1", Manufacturing: 4000, UsePhase: 1000, Total: 5000},
		{Label: "Other Car", Manufacturing: 2000, UsePhase: 4000, Total: 6000},
	}
	out := RenderChart(bars, 100)
	assert.Equal(t, 2, strings.Count(out, "Acme EV1"))
	assert.Contains(t, out, "6000")
}

func TestRenderChart_ShowsLegend(t *testing.T) {
	bars := []render.Bar{
		{Label: "Acme EV1", Manufacturing: 4000, UsePhase: 1000, Total: 5000, Legend: "(≈ 26,042 mi, 83 seedlings)"},
		{Label: "Tiny", Manufacturing: 0.2, UsePhase: 0.1, Total: 0.3},
	}
	out := RenderChart(bars, 100)
	assert.Contains(t, out, "26,042 mi")
	assert.Equal(t, 1, strings.Count(out, "seedlings"))
}

func TestRenderErrorPanel(t *testing.T) {
	out := RenderErrorPanel("segment not found", 80)
	assert.Contains(t, out, ErrorPanelTitle)
	assert.Contains(t, out, "segment not found")
	assert.Contains(t, out, DismissLabel)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
