package compare

import (
	"errors"

	"github.com/carbonwise/carbonwise/internal/vehicleapi"
)

// Validation messages, in the order the rules are checked.
const (
	MsgSegmentRequired = "segment required"
	MsgMustBePositive  = "must be positive"
	MsgUnknownSegment  = "unknown segment"
)

// User-facing fallback messages.
const (
	// MsgCompareFailed is shown when a compare failure carries no service detail.
	MsgCompareFailed = "Failed to fetch comparison results"
	// MsgCatalogFailed is shown when the segment catalog could not be loaded.
	MsgCatalogFailed = "Failed to load vehicle segments"
)

// ErrSubmissionDisabled is returned by Submit while there are no segments to choose from.
var ErrSubmissionDisabled = errors.New("submission disabled: no vehicle segments available")

// ErrEmptyResult marks a round trip that returned neither a result nor an error.
var ErrEmptyResult = errors.New("empty comparison result")

// ValidationError is a local, pre-flight input error. It never reaches the
// network and does not change the request phase.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// failureMessage turns a compare error into the text shown in the Failed phase.
func failureMessage(err error) string {
	if detail, ok := vehicleapi.DetailOf(err); ok {
		return detail
	}
	return MsgCompareFailed
}
