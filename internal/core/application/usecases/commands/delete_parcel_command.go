package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a parcel together with
// its history.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a deletion command.
func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	cmd := DeleteParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setParcelID(parcelID); err != nil {
		return DeleteParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the parcel to delete.
func (c DeleteParcelCommand) ParcelID() kernel.UUID { return c.parcelID }

func (c *DeleteParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
