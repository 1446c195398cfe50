package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents an admin's request to change an account's
// name, email and role, optionally resetting the password.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	userID   kernel.UUID
	name     string
	email    string
	role     user.Role
	password *string

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a user-update command. A nil password leaves
// the stored credential untouched; a non-nil one must be at least eight
// characters.
func NewUpdateUserCommand(
	actorID kernel.UUID,
	userID kernel.UUID,
	name string,
	email string,
	role user.Role,
	password *string,
) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// ActorID returns the acting user, who must be an admin.
func (c UpdateUserCommand) ActorID() kernel.UUID { return c.actorID }

// UserID returns the account to update.
func (c UpdateUserCommand) UserID() kernel.UUID { return c.userID }

// Name returns the replacement display name.
func (c UpdateUserCommand) Name() string { return c.name }

// Email returns the replacement email.
func (c UpdateUserCommand) Email() string { return c.email }

// Role returns the replacement role.
func (c UpdateUserCommand) Role() user.Role { return c.role }

// Password returns the optional replacement password.
func (c UpdateUserCommand) Password() *string { return c.password }

func (c *UpdateUserCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *UpdateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateUserCommand) setPassword(password *string) error {
	if password != nil && len(*password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}

	c.password = password
	return nil
}
