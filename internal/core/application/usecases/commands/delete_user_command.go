package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents an admin's request to remove an account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a deletion command.
func NewDeleteUserCommand(actorID kernel.UUID, userID kernel.UUID) (DeleteUserCommand, error) {
	cmd := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setUserID(userID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// ActorID returns the acting user, who must be an admin.
func (c DeleteUserCommand) ActorID() kernel.UUID { return c.actorID }

// UserID returns the account to delete.
func (c DeleteUserCommand) UserID() kernel.UUID { return c.userID }

func (c *DeleteUserCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
