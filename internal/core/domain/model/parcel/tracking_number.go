package parcel

import (
	"fmt"
	"regexp"

	"parcels/internal/pkg/errs"
)

// trackingNumberPattern matches the identifiers handed out at creation:
// the PCL prefix, the unix-seconds creation timestamp, and a five character
// uppercase alphanumeric suffix.
var trackingNumberPattern = regexp.MustCompile(`^PCL\d+[A-Z0-9]{5}$`)

// TrackingNumber is the immutable public identifier of a parcel. It is
// assigned exactly once, at creation, and never changes afterwards; both the
// back office and the public lookup key on it.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber validates a candidate string and wraps it.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("%q does not match PCL<timestamp><5 chars>", value))
	}
	return TrackingNumber{value: value}, nil
}

// String returns the raw tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual reports whether both tracking numbers hold the same value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate returns an error for the zero value.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	return nil
}
