package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel.
// The tracking number is not part of the command: the handler generates it.
//
// Example:
//
//	details, err := parcel.NewDetails("Acme", "1 Depot Rd", "J. Doe", "2 Home St", nil, nil, nil, nil)
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), details, parcel.UnknownStatus, nil, nil)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
	details    parcel.Details
	status     parcel.Status
	courierID  *kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel. Status may
// be left as UnknownStatus to get the pending default; an explicit status
// must belong to the closed set.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	details parcel.Details,
	status parcel.Status,
	courierID *kernel.UUID,
	customerID *kernel.UUID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDetails(details),
		cmd.setStatus(status),
		cmd.setCourierID(courierID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Details returns the descriptive fields.
func (c CreateParcelCommand) Details() parcel.Details {
	return c.details
}

// Status returns the requested initial status, UnknownStatus for the default.
func (c CreateParcelCommand) Status() parcel.Status {
	return c.status
}

// CourierID returns the optional courier reference.
func (c CreateParcelCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// CustomerID returns the optional customer reference.
func (c CreateParcelCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setDetails(details parcel.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateParcelCommand) setStatus(status parcel.Status) error {
	if status != parcel.UnknownStatus {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *CreateParcelCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	c.courierID = courierID
	return nil
}

func (c *CreateParcelCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}
