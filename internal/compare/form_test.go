package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonwise/carbonwise/internal/vehicle"
)

var testCatalog = []vehicle.Segment{"Sedan", "SUV", "Hatchback"}

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()
	assert.Equal(t, "50", f.DailyMileage)
	assert.Equal(t, "5", f.OwnershipYears)
	assert.Empty(t, f.Segment)
	assert.Nil(t, f.LastError())
}

func TestForm_UpdateField(t *testing.T) {
	f := NewForm()
	f.UpdateField(FieldDailyMileage, "-3")
	f.UpdateField(FieldOwnershipYears, "abc")
	f.UpdateField(FieldSegment, "SUV")

	assert.Equal(t, "-3", f.Get(FieldDailyMileage))
	assert.Equal(t, "abc", f.Get(FieldOwnershipYears))
	assert.Equal(t, "SUV", f.Get(FieldSegment))
	assert.Nil(t, f.LastError(), "updating must not validate")
}

func TestForm_ValidateAndBuild(t *testing.T) {
	tests := []struct {
		name    string
		mileage string
		years   string
		segment vehicle.Segment
		want    vehicle.Request
		wantErr string
	}{
		{
			name:    "valid",
			mileage: "50", years: "5", segment: "Sedan",
			want: vehicle.Request{DailyMileage: 50, OwnershipYears: 5, Segment: "Sedan"},
		},
		{
			name:    "fractional values",
			mileage: "12.5", years: "0.5", segment: "SUV",
			want: vehicle.Request{DailyMileage: 12.5, OwnershipYears: 0.5, Segment: "SUV"},
		},
		{
			name:    "no upper bound",
			mileage: "100000", years: "1000", segment: "Sedan",
			want: vehicle.Request{DailyMileage: 100000, OwnershipYears: 1000, Segment: "Sedan"},
		},
		{name: "empty segment", mileage: "50", years: "5", segment: "", wantErr: MsgSegmentRequired},
		{name: "blank segment", mileage: "50", years: "5", segment: "  ", wantErr: MsgSegmentRequired},
		{name: "empty segment wins over bad numbers", mileage: "0", years: "-1", segment: "", wantErr: MsgSegmentRequired},
		{name: "zero mileage", mileage: "0", years: "5", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "negative years", mileage: "50", years: "-2", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "unparseable mileage", mileage: "fifty", years: "5", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "empty years", mileage: "50", years: "", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "NaN", mileage: "NaN", years: "5", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "infinity", mileage: "50", years: "+Inf", segment: "Sedan", wantErr: MsgMustBePositive},
		{name: "bad numbers win over unknown segment", mileage: "0", years: "5", segment: "Truck", wantErr: MsgMustBePositive},
		{name: "unknown segment", mileage: "50", years: "5", segment: "Truck", wantErr: MsgUnknownSegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewForm()
			f.UpdateField(FieldDailyMileage, tt.mileage)
			f.UpdateField(FieldOwnershipYears, tt.years)
			f.UpdateField(FieldSegment, string(tt.segment))

			got, err := f.ValidateAndBuild(testCatalog)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.EqualError(t, err, tt.wantErr)
				require.NotNil(t, f.LastError())
				assert.Equal(t, tt.wantErr, f.LastError().Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Nil(t, f.LastError())
		})
	}
}

func TestForm_ValidateAndBuild_NoCatalogSkipsMembership(t *testing.T) {
	f := NewForm()
	f.UpdateField(FieldSegment, "Anything")

	got, err := f.ValidateAndBuild(nil)
	require.NoError(t, err)
	assert.Equal(t, vehicle.Segment("Anything"), got.Segment)
}

func TestForm_ValidateAndBuild_SuccessClearsError(t *testing.T) {
	f := NewForm()
	_, err := f.ValidateAndBuild(testCatalog)
	require.Error(t, err)
	require.NotNil(t, f.LastError())

	f.UpdateField(FieldSegment, "Sedan")
	_, err = f.ValidateAndBuild(testCatalog)
	require.NoError(t, err)
	assert.Nil(t, f.LastError())
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "daily_mileage", FieldDailyMileage.String())
	assert.Equal(t, "ownership_years", FieldOwnershipYears.String())
	assert.Equal(t, "vehicle_segment", FieldSegment.String())
	assert.Equal(t, "Field(9)", Field(9).String())
}
