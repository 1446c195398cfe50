package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a status-only update. Any status may
// move to any other status; there is no transition graph.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	status   parcel.Status
	actorID  *kernel.UUID
	note     *string

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a status-update command.
func NewUpdateParcelStatusCommand(
	parcelID kernel.UUID,
	status parcel.Status,
	actorID *kernel.UUID,
	note *string,
) (UpdateParcelStatusCommand, error) {
	cmd := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setStatus(status),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateParcelStatusCommand{}, err
	}
	cmd.note = note

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c UpdateParcelStatusCommand) ParcelID() kernel.UUID { return c.parcelID }

// Status returns the target status.
func (c UpdateParcelStatusCommand) Status() parcel.Status { return c.status }

// ActorID returns the acting user, when known.
func (c UpdateParcelStatusCommand) ActorID() *kernel.UUID { return c.actorID }

// Note returns the optional history note.
func (c UpdateParcelStatusCommand) Note() *string { return c.note }

func (c *UpdateParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelStatusCommand) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateParcelStatusCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
