package commands

import (
	"errors"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

const minPasswordLength = 8

// CreateUserCommand represents an admin's request to create a back-office
// account. It carries the plaintext password; hashing happens in the handler
// and only the hash ever reaches the entity or storage.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	userID   kernel.UUID
	name     string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a user-creation command. The password must be
// at least eight characters.
func NewCreateUserCommand(
	actorID kernel.UUID,
	userID kernel.UUID,
	name string,
	email string,
	password string,
	role user.Role,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// ActorID returns the acting user, who must be an admin.
func (c CreateUserCommand) ActorID() kernel.UUID { return c.actorID }

// UserID returns the identifier for the new user.
func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }

// Name returns the display name.
func (c CreateUserCommand) Name() string { return c.name }

// Email returns the login email.
func (c CreateUserCommand) Email() string { return c.email }

// Password returns the plaintext password to hash.
func (c CreateUserCommand) Password() string { return c.password }

// Role returns the role to grant.
func (c CreateUserCommand) Role() user.Role { return c.role }

func (c *CreateUserCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return errs.NewValueIsInvalidError("password")
	}

	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
