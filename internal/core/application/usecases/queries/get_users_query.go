package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves all back-office accounts.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a user list query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserResponse is one account row. The password hash never leaves the
// storage layer through this view.
type UserResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
