package parcel

import (
	"errors"
	"fmt"
	"strings"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// Details groups the mutable descriptive fields of a parcel: who sends it,
// who receives it, and the physical attributes. It is a value object; all
// validation happens in NewDetails so a Details value in hand is always
// consistent.
type Details struct {
	senderName       string
	senderAddress    string
	recipientName    string
	recipientAddress string
	recipientPhone   *string
	weight           *float64
	dimensions       *string
	notes            *string

	guard guard.ConstructorGuard
}

// ErrDetailsAreNotConstructed is returned when a Details value was not
// created via NewDetails.
var ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails constructor")

// NewDetails validates and builds the descriptive fields of a parcel.
//
// Sender and recipient name and address are required and must be non-blank.
// Weight, when present, must not be negative. Phone, dimensions and notes
// are free-form optional strings.
func NewDetails(
	senderName string,
	senderAddress string,
	recipientName string,
	recipientAddress string,
	recipientPhone *string,
	weight *float64,
	dimensions *string,
	notes *string,
) (Details, error) {
	if strings.TrimSpace(senderName) == "" {
		return Details{}, errs.NewValueIsRequiredError("senderName")
	}
	if strings.TrimSpace(senderAddress) == "" {
		return Details{}, errs.NewValueIsRequiredError("senderAddress")
	}
	if strings.TrimSpace(recipientName) == "" {
		return Details{}, errs.NewValueIsRequiredError("recipientName")
	}
	if strings.TrimSpace(recipientAddress) == "" {
		return Details{}, errs.NewValueIsRequiredError("recipientAddress")
	}
	if weight != nil && *weight < 0 {
		return Details{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%f is negative", *weight))
	}

	return Details{
		senderName:       senderName,
		senderAddress:    senderAddress,
		recipientName:    recipientName,
		recipientAddress: recipientAddress,
		recipientPhone:   recipientPhone,
		weight:           weight,
		dimensions:       dimensions,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the value was created via NewDetails.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// SenderName returns the sender's name.
func (d Details) SenderName() string { return d.senderName }

// SenderAddress returns the sender's address.
func (d Details) SenderAddress() string { return d.senderAddress }

// RecipientName returns the recipient's name.
func (d Details) RecipientName() string { return d.recipientName }

// RecipientAddress returns the recipient's address.
func (d Details) RecipientAddress() string { return d.recipientAddress }

// RecipientPhone returns the optional recipient phone.
func (d Details) RecipientPhone() *string { return d.recipientPhone }

// Weight returns the optional weight in kilograms.
func (d Details) Weight() *float64 { return d.weight }

// Dimensions returns the optional free-text dimensions ("LxWxH").
func (d Details) Dimensions() *string { return d.dimensions }

// Notes returns the optional free-text notes.
func (d Details) Notes() *string { return d.notes }
