package commands

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// requireAdmin loads the acting user and rejects the operation unless the
// actor holds the admin role. User management commands call it before
// touching anything.
func requireAdmin(ctx context.Context, repo ports.UserRepository, actorID kernel.UUID) (*user.User, error) {
	actor, err := repo.Get(ctx, actorID)
	if err != nil {
		return nil, errs.NewNotAuthorizedErrorWithCause("manage users", err)
	}
	if !actor.IsAdmin() {
		return nil, errs.NewNotAuthorizedError("manage users")
	}
	return actor, nil
}
