// Package user contains the User entity and the closed Role enum.
// Couriers are users with the courier role; there is no separate courier
// entity.
package user

import (
	"errors"
	"net/mail"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a back-office account. The password credential is stored as a
// bcrypt hash; hashing happens in the application layer so the entity never
// sees a plaintext password.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates a validated user.
func NewUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	return RestoreUser(id, name, email, passwordHash, role)
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, name, email, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the unique login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// IsAdmin reports whether the user may manage other users.
func (u *User) IsAdmin() bool { return u.role == Admin }

// IsCourier reports whether the user is eligible for parcel assignment.
func (u *User) IsCourier() bool { return u.role == Courier }

// Update replaces name, email and role.
func (u *User) Update(name, email string, role Role) error {
	return errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	)
}

// ChangeRole replaces the role only.
func (u *User) ChangeRole(role Role) error {
	return u.setRole(role)
}

// ChangePasswordHash replaces the stored credential with a new bcrypt hash.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
