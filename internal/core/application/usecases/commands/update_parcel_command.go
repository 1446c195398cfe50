package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a full update of a parcel: details, status,
// courier and customer references. The tracking number is never part of an
// update.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	details    parcel.Details
	status     parcel.Status
	courierID  *kernel.UUID
	customerID *kernel.UUID
	actorID    *kernel.UUID
	note       *string

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a full-update command. actorID identifies
// the back-office user performing the change; note is attached to the history
// entry when the status actually changes.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	details parcel.Details,
	status parcel.Status,
	courierID *kernel.UUID,
	customerID *kernel.UUID,
	actorID *kernel.UUID,
	note *string,
) (UpdateParcelCommand, error) {
	cmd := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDetails(details),
		cmd.setStatus(status),
		cmd.setOptionalID(&cmd.courierID, courierID),
		cmd.setOptionalID(&cmd.customerID, customerID),
		cmd.setOptionalID(&cmd.actorID, actorID),
	); err != nil {
		return UpdateParcelCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

// Details returns the replacement descriptive fields.
func (c UpdateParcelCommand) Details() parcel.Details { return c.details }

// Status returns the requested status.
func (c UpdateParcelCommand) Status() parcel.Status { return c.status }

// CourierID returns the replacement courier reference, nil to clear.
func (c UpdateParcelCommand) CourierID() *kernel.UUID { return c.courierID }

// CustomerID returns the replacement customer reference, nil to clear.
func (c UpdateParcelCommand) CustomerID() *kernel.UUID { return c.customerID }

// ActorID returns the acting user, when known.
func (c UpdateParcelCommand) ActorID() *kernel.UUID { return c.actorID }

// Note returns the optional history note.
func (c UpdateParcelCommand) Note() *string { return c.note }

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setDetails(details parcel.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *UpdateParcelCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateParcelCommand) setOptionalID(field **kernel.UUID, id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	*field = id
	return nil
}
