package commands

import (
	"context"
	"errors"
)

// ErrCannotDeleteSelf is returned when an admin tries to delete their own
// account.
var ErrCannotDeleteSelf = errors.New("cannot delete own account")

// DeleteUserCommandHandler removes a back-office account. Admin-only, and an
// admin can never delete themselves. Parcels assigned to the user keep living
// with the courier reference cleared; their history entries keep the row but
// lose the user reference.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorID().IsEqual(cmd.UserID()) {
		return ErrCannotDeleteSelf
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

	if err := userRepo.Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
