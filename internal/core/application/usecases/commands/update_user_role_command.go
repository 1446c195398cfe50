package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/guard"
)

var ErrUpdateUserRoleCommandIsNotConstructed = errors.New(
	"UpdateUserRoleCommand must be created via NewUpdateUserRoleCommand constructor",
)

// UpdateUserRoleCommand represents an admin's request to change only an
// account's role.
type UpdateUserRoleCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	userID  kernel.UUID
	role    user.Role

	guard guard.ConstructorGuard
}

// NewUpdateUserRoleCommand creates a role-change command.
func NewUpdateUserRoleCommand(
	actorID kernel.UUID,
	userID kernel.UUID,
	role user.Role,
) (UpdateUserRoleCommand, error) {
	cmd := UpdateUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return UpdateUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserRoleCommandIsNotConstructed)
}

// ActorID returns the acting user, who must be an admin.
func (c UpdateUserRoleCommand) ActorID() kernel.UUID { return c.actorID }

// UserID returns the account to change.
func (c UpdateUserRoleCommand) UserID() kernel.UUID { return c.userID }

// Role returns the role to grant.
func (c UpdateUserRoleCommand) Role() user.Role { return c.role }

func (c *UpdateUserRoleCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserRoleCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
