package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status represents the delivery state of a parcel.
//
// The set is closed but deliberately carries no transition graph: any status
// may follow any other. The business has not supplied transition rules, and
// the audit trail records every change regardless of direction.
type Status int

const (
	// UnknownStatus is the invalid zero value, kept to catch
	// uninitialized Status fields.
	UnknownStatus Status = iota

	// Pending is the initial status of a newly registered parcel.
	Pending

	// InTransit marks a parcel moving between facilities.
	InTransit

	// OutForDelivery marks a parcel on a courier's final route.
	OutForDelivery

	// Delivered marks a successfully delivered parcel.
	Delivered

	// FailedAttempt marks a delivery attempt that did not succeed.
	FailedAttempt

	// Cancelled marks a parcel whose delivery was cancelled.
	Cancelled

	// Returned marks a parcel sent back to the sender.
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus:  "unknown",
		Pending:        "pending",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		FailedAttempt:  "failed_attempt",
		Cancelled:      "cancelled",
		Returned:       "returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		FailedAttempt:  "failed_attempt",
		Cancelled:      "cancelled",
		Returned:       "returned",
	}
}

// ParseStatus converts a stored or submitted string into a Status.
// Returns a validation error for anything outside the closed set.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status belongs to the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name persisted in the database and exposed
// over the API. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
