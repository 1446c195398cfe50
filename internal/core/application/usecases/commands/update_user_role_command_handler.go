package commands

import (
	"context"
)

// UpdateUserRoleCommandHandler handles role-only changes. Admin-only.
type UpdateUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserRoleCommandHandler creates a handler for role changes.
func NewUpdateUserRoleCommandHandler(uowFactory UserUoWFactory) UpdateUserRoleCommandHandler {
	return UpdateUserRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role change.
func (h UpdateUserRoleCommandHandler) Handle(ctx context.Context, cmd UpdateUserRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if _, err := requireAdmin(ctx, userRepo, cmd.ActorID()); err != nil {
		return err
	}

	entity, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = entity.ChangeRole(cmd.Role()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
