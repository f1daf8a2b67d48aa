package greenops

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrNegativeValue is returned for a negative CO2 amount.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned for NaN, Inf or overflowing input.
	ErrCalculationOverflow = constError("calculation overflow")
)
