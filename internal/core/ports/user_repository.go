package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for back-office users.
type UserRepository interface {
	// Add persists a new user. An email collision surfaces as a conflict
	// error.
	Add(ctx context.Context, entity *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, entity *user.User) error

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Delete removes a user; parcels referencing it as courier keep
	// existing with the reference cleared at the storage layer.
	Delete(ctx context.Context, id kernel.UUID) error
}
