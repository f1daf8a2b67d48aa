package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/carbonwise/carbonwise/internal/greenops"
	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// RecordJSON is one ranked vehicle in JSON output.
type RecordJSON struct {
	Rank              int     `json:"rank"`
	Make              string  `json:"make"`
	Model             string  `json:"model"`
	Year              int     `json:"year"`
	ManufacturingCO2  float64 `json:"manufacturing_co2"`
	UsePhaseCO2       float64 `json:"use_phase_co2"`
	TotalLifecycleCO2 float64 `json:"total_lifecycle_co2"`
}

// InputJSON echoes the submitted request in JSON output.
type InputJSON struct {
	DailyMileage   float64 `json:"daily_mileage"`
	OwnershipYears float64 `json:"ownership_years"`
	VehicleSegment string  `json:"vehicle_segment"`
}

// SummaryJSON is the summary block in JSON output.
type SummaryJSON struct {
	LifetimeKm  float64 `json:"lifetime_km"`
	TopCO2Kg    float64 `json:"top_co2_kg"`
	Equivalency string  `json:"equivalency,omitempty"`
}

// ComparisonJSON is the JSON document written for a comparison.
type ComparisonJSON struct {
	Input   InputJSON    `json:"input"`
	Summary SummaryJSON  `json:"summary"`
	Overall []RecordJSON `json:"overall_top_3"`
	ICE     []RecordJSON `json:"petrol_diesel_top_3"`
	EV      []RecordJSON `json:"ev_top_3"`
	Hybrid  []RecordJSON `json:"hybrid_top_3"`
}

// HealthJSON is the JSON document written for a health probe.
type HealthJSON struct {
	BaseURL       string `json:"base_url"`
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	TotalVehicles int    `json:"total_vehicles"`
	Healthy       bool   `json:"healthy"`
}

func cardsToJSON(cards []Card) []RecordJSON {
	out := make([]RecordJSON, 0, len(cards))
	for _, c := range cards {
		out = append(out, RecordJSON{
			Rank:              c.Rank,
			Make:              c.Record.Make,
			Model:             c.Record.Model,
			Year:              c.Record.Year,
			ManufacturingCO2:  c.Record.ManufacturingCO2,
			UsePhaseCO2:       c.Record.UsePhaseCO2,
			TotalLifecycleCO2: c.Record.TotalLifecycleCO2,
		})
	}
	return out
}

// ToJSON converts v into its JSON document.
func ToJSON(v View) ComparisonJSON {
	doc := ComparisonJSON{
		Input: InputJSON{
			DailyMileage:   v.Summary.DailyMileage,
			OwnershipYears: v.Summary.OwnershipYears,
			VehicleSegment: string(v.Summary.Segment),
		},
		Summary: SummaryJSON{
			LifetimeKm:  v.Summary.LifetimeKm,
			TopCO2Kg:    v.Summary.TopCO2Kg,
			Equivalency: v.Summary.Equivalency,
		},
	}
	for _, s := range v.Sections {
		records := cardsToJSON(s.Cards)
		switch s.Key {
		case SectionOverall:
			doc.Overall = records
		case SectionICE:
			doc.ICE = records
		case SectionEV:
			doc.EV = records
		case SectionHybrid:
			doc.Hybrid = records
		}
	}
	return doc
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderJSON writes v as an indented JSON document.
func RenderJSON(w io.Writer, v View) error {
	return writeJSON(w, ToJSON(v))
}

// RenderTable writes v as plain text: the summary, then one table per
// visible section.
func RenderTable(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	s := v.Summary
	lines := [][2]string{
		{"Segment", string(s.Segment)},
		{"Daily mileage", s.DailyMileageText},
		{"Ownership", s.OwnershipText},
		{"Lifetime distance", s.LifetimeText},
		{"Lowest lifecycle CO2", s.TopCO2Text},
	}
	if _, err := fmt.Fprintf(tw, "%s\n", TitleSummary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(tw, "  %s:\t%s\n", l[0], l[1]); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	if s.Equivalency != "" {
		if _, err := fmt.Fprintf(tw, "  %s\n", s.Equivalency); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	for _, section := range v.Sections {
		if !section.Visible {
			continue
		}
		if err := writeSectionTable(tw, section); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeSectionTable(tw *tabwriter.Writer, section Section) error {
	if _, err := fmt.Fprintf(tw, "\n%s\n", section.Title); err != nil {
		return fmt.Errorf("writing section header: %w", err)
	}
	if _, err := fmt.Fprint(tw, "RANK\tVEHICLE\tYEAR\tMANUFACTURING (kg)\tUSE PHASE (kg)\tTOTAL (kg)\t\n"); err != nil {
		return fmt.Errorf("writing section header: %w", err)
	}
	for _, c := range section.Cards {
		rank := strconv.Itoa(c.Rank)
		if c.Marker != "" {
			rank = c.Marker + " " + rank
		}
		badge := ""
		if c.Badge != "" {
			badge = "[" + c.Badge + "]"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			rank,
			c.Record.Name(),
			c.Record.Year,
			greenops.FormatKg(c.Record.ManufacturingCO2),
			greenops.FormatKg(c.Record.UsePhaseCO2),
			greenops.FormatKg(c.Record.TotalLifecycleCO2),
			badge,
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return nil
}

// RenderSegmentsJSON writes the catalog as {"segments": [...]}.
func RenderSegmentsJSON(w io.Writer, segments []vehicle.Segment) error {
	names := make([]string, 0, len(segments))
	for _, s := range segments {
		names = append(names, string(s))
	}
	return writeJSON(w, struct {
		Segments []string `json:"segments"`
	}{Segments: names})
}

// RenderSegmentsTable writes one segment per line, marking the default.
func RenderSegmentsTable(w io.Writer, segments []vehicle.Segment) error {
	if len(segments) == 0 {
		_, err := fmt.Fprintln(w, "No vehicle segments available.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprint(tw, "SEGMENT\tDEFAULT\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, s := range segments {
		def := ""
		if i == 0 {
			def = "yes"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", s, def); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// NewHealthJSON builds the health document for baseURL.
func NewHealthJSON(baseURL string, h vehicle.Health) HealthJSON {
	return HealthJSON{
		BaseURL:       baseURL,
		Status:        h.Status,
		DatasetLoaded: h.DatasetLoaded,
		TotalVehicles: h.TotalVehicles,
		Healthy:       h.Healthy(),
	}
}

// RenderHealthJSON writes the health document.
func RenderHealthJSON(w io.Writer, baseURL string, h vehicle.Health) error {
	return writeJSON(w, NewHealthJSON(baseURL, h))
}

// RenderHealthTable writes the health payload as aligned key/value lines.
func RenderHealthTable(w io.Writer, baseURL string, h vehicle.Health) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	rows := [][2]string{
		{"Service", baseURL},
		{"Status", h.Status},
		{"Dataset loaded", strconv.FormatBool(h.DatasetLoaded)},
		{"Vehicles", greenops.FormatNumber(int64(h.TotalVehicles))},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("writing health: %w", err)
		}
	}
	return tw.Flush()
}
