package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a courier assignment, change or clearing
// (nil courierID) on a parcel.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	courierID *kernel.UUID
	actorID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a courier-assignment command.
func NewAssignCourierCommand(
	parcelID kernel.UUID,
	courierID *kernel.UUID,
	actorID *kernel.UUID,
) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCourierID(courierID),
		cmd.setActorID(actorID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ParcelID returns the parcel to reassign.
func (c AssignCourierCommand) ParcelID() kernel.UUID { return c.parcelID }

// CourierID returns the new courier, nil to clear the assignment.
func (c AssignCourierCommand) CourierID() *kernel.UUID { return c.courierID }

// ActorID returns the acting user, when known.
func (c AssignCourierCommand) ActorID() *kernel.UUID { return c.actorID }

func (c *AssignCourierCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}

	c.courierID = courierID
	return nil
}

func (c *AssignCourierCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
