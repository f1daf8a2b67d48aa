package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carbonwise/carbonwise/internal/greenops"
	"github.com/carbonwise/carbonwise/internal/render"
)

// Layout constants.
const (
	borderPadding  = 2
	cardWidth      = 30
	chartLabelLen  = 22
	minChartBarLen = 10
	truncateSuffix = "..."
)

// Idle screen text.
const (
	IdleTitle = "Ready to Compare?"
	IdleHint  = "Enter your daily mileage, ownership period and vehicle segment, then press Enter."
)

// ErrorPanelTitle heads the failed-request panel.
const ErrorPanelTitle = "Comparison failed"

// DismissLabel is the action that clears a failed request.
const DismissLabel = "Try Again"

const (
	blockFull  = "█"
	blockLight = "░"
)

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := max(n-len(truncateSuffix), 0)
	if cut > len(runes) {
		cut = len(runes)
	}
	return string(runes[:cut]) + truncateSuffix
}

// RenderIdle renders the prompt shown before the first comparison.
func RenderIdle(width int) string {
	content := HeaderStyle.Render(IdleTitle) + "\n" + SubtleStyle.Render(IdleHint)
	return BoxStyle.Width(max(width-borderPadding, 0)).Render(content)
}

// RenderErrorPanel renders a failed request with its dismiss action.
func RenderErrorPanel(message string, width int) string {
	var sb strings.Builder
	sb.WriteString(CriticalStyle.Render(ErrorPanelTitle))
	sb.WriteString("\n")
	sb.WriteString(message)
	sb.WriteString("\n\n")
	sb.WriteString(ButtonStyle.Render(DismissLabel))
	sb.WriteString(HelpStyle.Render("  (enter or esc)"))
	return ErrorPanelStyle.Width(max(width-borderPadding, 0)).Render(sb.String())
}

// RenderResult renders the summary, every visible section and the chart.
func RenderResult(v render.View, width int) string {
	parts := []string{RenderSummary(v.Summary, width)}
	for _, s := range v.Sections {
		if !s.Visible {
			continue
		}
		parts = append(parts, RenderSection(s))
	}
	if len(v.Chart) > 0 {
		parts = append(parts, RenderChart(v.Chart, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderSummary renders the analysis summary box.
func RenderSummary(s render.Summary, width int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(render.TitleSummary))
	sb.WriteString("\n")

	fields := [][2]string{
		{"Lifetime distance", s.LifetimeText},
		{"Daily mileage", s.DailyMileageText},
		{"Ownership", s.OwnershipText},
		{"Segment", string(s.Segment)},
		{"Lowest lifecycle CO₂", s.TopCO2Text},
	}
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-22s", f[0]+":")))
		sb.WriteString(ValueStyle.Render(f[1]))
	}
	if s.Equivalency != "" {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(s.Equivalency))
	}
	return BoxStyle.Width(max(width-borderPadding, 0)).Render(sb.String())
}

// RenderSection renders a titled row of ranked vehicle cards.
func RenderSection(s render.Section) string {
	cards := make([]string, 0, len(s.Cards))
	for _, c := range s.Cards {
		cards = append(cards, RenderCard(c))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return lipgloss.JoinVertical(lipgloss.Left, "", HeaderStyle.Render(s.Title), row)
}

// RenderCard renders one ranked vehicle.
func RenderCard(c render.Card) string {
	var sb strings.Builder
	heading := fmt.Sprintf("#%d", c.Rank)
	if c.Marker != "" {
		heading = c.Marker + " " + heading
	}
	sb.WriteString(ValueStyle.Render(heading))
	if c.Badge != "" {
		sb.WriteString(" ")
		sb.WriteString(BadgeStyle.Render(c.Badge))
	}
	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render(truncate(c.Record.Name(), cardWidth-4)))
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%d", c.Record.Year)))
	sb.WriteString("\n\n")
	sb.WriteString(LabelStyle.Render("Manufacturing: "))
	sb.WriteString(greenops.FormatKg(c.Record.ManufacturingCO2) + " kg")
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Use phase:     "))
	sb.WriteString(greenops.FormatKg(c.Record.UsePhaseCO2) + " kg")
	sb.WriteString("\n")
	sb.WriteString(LabelStyle.Render("Total:         "))
	sb.WriteString(ValueStyle.Render(greenops.FormatKg(c.Record.TotalLifecycleCO2) + " kg"))

	style := CardStyle
	if c.Rank == 1 {
		style = FirstCardStyle
	}
	return style.Width(cardWidth).Render(sb.String())
}

// RenderChart renders the emissions breakdown as stacked horizontal bars,
// manufacturing then use phase, scaled to the largest total.
func RenderChart(bars []render.Bar, width int) string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(render.TitleChart))
	sb.WriteString("  ")
	sb.WriteString(ManufacturingStyle.Render(blockFull + " manufacturing"))
	sb.WriteString("  ")
	sb.WriteString(UsePhaseStyle.Render(blockFull + " use phase"))

	barLen := max(width-chartLabelLen-borderPadding*2-12, minChartBarLen)
	peak := 0.0
	for _, b := range bars {
		peak = math.Max(peak, b.Manufacturing+b.UsePhase)
	}

	for _, b := range bars {
		sb.WriteString("\n")
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", chartLabelLen, truncate(b.Label, chartLabelLen-1))))
		mfg, use := barSegments(b.Manufacturing, b.UsePhase, peak, barLen)
		sb.WriteString(ManufacturingStyle.Render(strings.Repeat(blockFull, mfg)))
		sb.WriteString(UsePhaseStyle.Render(strings.Repeat(blockFull, use)))
		sb.WriteString(HelpStyle.Render(strings.Repeat(blockLight, barLen-mfg-use)))
		sb.WriteString(" ")
		sb.WriteString(ValueStyle.Render(greenops.FormatKg(b.Total)))
		if b.Legend != "" {
			sb.WriteString(" ")
			sb.WriteString(SubtleStyle.Render(b.Legend))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, "", sb.String())
}

// barSegments scales the two series of one bar to at most length cells.
func barSegments(manufacturing, usePhase, peak float64, length int) (int, int) {
	if peak <= 0 || length <= 0 {
		return 0, 0
	}
	scale := float64(length) / peak
	mfg := int(math.Round(math.Max(manufacturing, 0) * scale))
	total := int(math.Round((math.Max(manufacturing, 0) + math.Max(usePhase, 0)) * scale))
	total = min(total, length)
	mfg = min(mfg, total)
	return mfg, total - mfg
}
