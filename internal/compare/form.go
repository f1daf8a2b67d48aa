package compare

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/carbonwise/carbonwise/internal/vehicle"
)

// Field identifies one form input.
type Field int

const (
	// FieldDailyMileage is the average daily distance in km.
	FieldDailyMileage Field = iota
	// FieldOwnershipYears is the planned ownership period in years.
	FieldOwnershipYears
	// FieldSegment is the selected vehicle segment.
	FieldSegment
)

func (f Field) String() string {
	switch f {
	case FieldDailyMileage:
		return "daily_mileage"
	case FieldOwnershipYears:
		return "ownership_years"
	case FieldSegment:
		return "vehicle_segment"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Form defaults.
const (
	DefaultDailyMileage   = "50"
	DefaultOwnershipYears = "5"
)

// Form is the editable draft behind a comparison request. Fields hold the
// raw text the user typed so intermediate invalid values survive editing;
// nothing is parsed until ValidateAndBuild.
type Form struct {
	DailyMileage   string
	OwnershipYears string
	Segment        vehicle.Segment

	lastErr *ValidationError
}

// NewForm returns a draft with the default mileage and ownership period
// and no segment selected.
func NewForm() Form {
	return Form{
		DailyMileage:   DefaultDailyMileage,
		OwnershipYears: DefaultOwnershipYears,
	}
}

// UpdateField sets a field without validating it.
func (f *Form) UpdateField(field Field, value string) {
	switch field {
	case FieldDailyMileage:
		f.DailyMileage = value
	case FieldOwnershipYears:
		f.OwnershipYears = value
	case FieldSegment:
		f.Segment = vehicle.Segment(value)
	}
}

// Get returns the current text of field.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldDailyMileage:
		return f.DailyMileage
	case FieldOwnershipYears:
		return f.OwnershipYears
	case FieldSegment:
		return string(f.Segment)
	default:
		return ""
	}
}

// LastError returns the error recorded by the most recent failed validation,
// or nil after a successful one.
func (f *Form) LastError() *ValidationError {
	return f.lastErr
}

// ValidateAndBuild checks the draft and builds a Request. Rules are applied
// in order and the first failure wins:
//  1. segment must be non-empty
//  2. daily mileage and ownership years must both be > 0
//  3. when catalog is non-empty the segment must be one of its entries
//
// There is no upper bound on either number. A failure is recorded on the
// form; a success clears the recorded error.
func (f *Form) ValidateAndBuild(catalog []vehicle.Segment) (vehicle.Request, error) {
	req, verr := f.build(catalog)
	f.lastErr = verr
	if verr != nil {
		return vehicle.Request{}, verr
	}
	return req, nil
}

func (f *Form) build(catalog []vehicle.Segment) (vehicle.Request, *ValidationError) {
	segment := vehicle.Segment(strings.TrimSpace(string(f.Segment)))
	if segment == "" {
		return vehicle.Request{}, &ValidationError{Message: MsgSegmentRequired}
	}

	mileage, okMileage := parsePositive(f.DailyMileage)
	years, okYears := parsePositive(f.OwnershipYears)
	if !okMileage || !okYears {
		return vehicle.Request{}, &ValidationError{Message: MsgMustBePositive}
	}

	if len(catalog) > 0 && !slices.Contains(catalog, segment) {
		return vehicle.Request{}, &ValidationError{Message: MsgUnknownSegment}
	}

	return vehicle.Request{
		DailyMileage:   mileage,
		OwnershipYears: years,
		Segment:        segment,
	}, nil
}

// parsePositive parses s as a finite number > 0. Unparseable text counts
// as not positive.
func parsePositive(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
