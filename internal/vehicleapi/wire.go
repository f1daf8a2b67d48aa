package vehicleapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// Wire types mirror the service's snake_case JSON exactly. Pointer fields
// let the decoder tell "missing" from "zero".

type compareRequestWire struct {
	DailyMileage   float64 `json:"daily_mileage"`
	OwnershipYears float64 `json:"ownership_years"`
	VehicleSegment string  `json:"vehicle_segment"`
}

type segmentsWire struct {
	Segments *[]string `json:"segments"`
}

type recordWire struct {
	Make              *string  `json:"make"`
	Model             *string  `json:"model"`
	Year              *int     `json:"year"`
	ManufacturingCO2  *float64 `json:"manufacturing_co2"`
	UsePhaseCO2       *float64 `json:"use_phase_co2"`
	TotalLifecycleCO2 *float64 `json:"total_lifecycle_co2"`
}

type resultWire struct {
	LifetimeKm       *float64      `json:"lifetime_km"`
	OverallTop3      *[]recordWire `json:"overall_top_3"`
	PetrolDieselTop3 *[]recordWire `json:"petrol_diesel_top_3"`
	EVTop3           *[]recordWire `json:"ev_top_3"`
	HybridTop3       *[]recordWire `json:"hybrid_top_3"`
}

type healthWire struct {
	Status        string `json:"status"`
	DatasetLoaded bool   `json:"dataset_loaded"`
	TotalVehicles int    `json:"total_vehicles"`
}

// decodeStrict decodes exactly one JSON value into v, rejecting unknown fields.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidResponse)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing field %q", ErrInvalidResponse, field)
}

func negative(field string, v float64) error {
	return fmt.Errorf("%w: field %q is negative (%g)", ErrInvalidResponse, field, v)
}

func (w segmentsWire) toModel() ([]vehicle.Segment, error) {
	if w.Segments == nil {
		return nil, missing("segments")
	}
	out := make([]vehicle.Segment, 0, len(*w.Segments))
	for _, s := range *w.Segments {
		out = append(out, vehicle.Segment(s))
	}
	return out, nil
}

func (w recordWire) toModel(list string, i int) (vehicle.Record, error) {
	prefix := fmt.Sprintf("%s[%d].", list, i)
	switch {
	case w.Make == nil:
		return vehicle.Record{}, missing(prefix + "make")
	case w.Model == nil:
		return vehicle.Record{}, missing(prefix + "model")
	case w.Year == nil:
		return vehicle.Record{}, missing(prefix + "year")
	case w.ManufacturingCO2 == nil:
		return vehicle.Record{}, missing(prefix + "manufacturing_co2")
	case w.UsePhaseCO2 == nil:
		return vehicle.Record{}, missing(prefix + "use_phase_co2")
	case w.TotalLifecycleCO2 == nil:
		return vehicle.Record{}, missing(prefix + "total_lifecycle_co2")
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"manufacturing_co2", *w.ManufacturingCO2},
		{"use_phase_co2", *w.UsePhaseCO2},
		{"total_lifecycle_co2", *w.TotalLifecycleCO2},
	} {
		if f.v < 0 {
			return vehicle.Record{}, negative(prefix+f.name, f.v)
		}
	}

	return vehicle.Record{
		Make:              *w.Make,
		Model:             *w.Model,
		Year:              *w.Year,
		ManufacturingCO2:  *w.ManufacturingCO2,
		UsePhaseCO2:       *w.UsePhaseCO2,
		TotalLifecycleCO2: *w.TotalLifecycleCO2,
	}, nil
}

func recordsToModel(list string, in *[]recordWire) ([]vehicle.Record, error) {
	if in == nil {
		return nil, missing(list)
	}
	out := make([]vehicle.Record, 0, len(*in))
	for i, rw := range *in {
		rec, err := rw.toModel(list, i)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (w resultWire) toModel() (*vehicle.Result, error) {
	if w.LifetimeKm == nil {
		return nil, missing("lifetime_km")
	}
	if *w.LifetimeKm < 0 {
		return nil, negative("lifetime_km", *w.LifetimeKm)
	}

	var (
		res = &vehicle.Result{LifetimeKm: *w.LifetimeKm}
		err error
	)
	if res.OverallTop3, err = recordsToModel("overall_top_3", w.OverallTop3); err != nil {
		return nil, err
	}
	if res.ICETop3, err = recordsToModel("petrol_diesel_top_3", w.PetrolDieselTop3); err != nil {
		return nil, err
	}
	if res.EVTop3, err = recordsToModel("ev_top_3", w.EVTop3); err != nil {
		return nil, err
	}
	if res.HybridTop3, err = recordsToModel("hybrid_top_3", w.HybridTop3); err != nil {
		return nil, err
	}
	return res, nil
}

func fromModelRecords(in []vehicle.Record) *[]recordWire {
	out := make([]recordWire, 0, len(in))
	for _, r := range in {
		out = append(out, recordWire{
			Make:              &r.Make,
			Model:             &r.Model,
			Year:              &r.Year,
			ManufacturingCO2:  &r.ManufacturingCO2,
			UsePhaseCO2:       &r.UsePhaseCO2,
			TotalLifecycleCO2: &r.TotalLifecycleCO2,
		})
	}
	return &out
}

// MarshalResult encodes res in the service's wire format.
func MarshalResult(res *vehicle.Result) ([]byte, error) {
	if res == nil {
		return nil, errors.New("nil result")
	}
	w := resultWire{
		LifetimeKm:       &res.LifetimeKm,
		OverallTop3:      fromModelRecords(res.OverallTop3),
		PetrolDieselTop3: fromModelRecords(res.ICETop3),
		EVTop3:           fromModelRecords(res.EVTop3),
		HybridTop3:       fromModelRecords(res.HybridTop3),
	}
	return json.MarshalIndent(w, "", "  ")
}

// UnmarshalResult strictly decodes a compare response body.
func UnmarshalResult(data []byte) (*vehicle.Result, error) {
	var w resultWire
	if err := decodeStrict(bytes.NewReader(data), &w); err != nil {
		return nil, err
	}
	return w.toModel()
}

// MarshalHealth encodes h in the service's wire format.
func MarshalHealth(h vehicle.Health) ([]byte, error) {
	return json.MarshalIndent(healthWire{
		Status:        h.Status,
		DatasetLoaded: h.DatasetLoaded,
		TotalVehicles: h.TotalVehicles,
	}, "", "  ")
}

// MarshalSegments encodes a segment catalog in the service's wire format.
func MarshalSegments(segments []vehicle.Segment) ([]byte, error) {
	names := make([]string, 0, len(segments))
	for _, s := range segments {
		names = append(names, string(s))
	}
	return json.MarshalIndent(segmentsWire{Segments: &names}, "", "  ")
}
