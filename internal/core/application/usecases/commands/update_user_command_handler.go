package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// UpdateUserCommandHandler handles account updates: name, email, role and the
// optional password reset. Admin-only.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. A duplicate email surfaces as a
// conflict from the storage layer.
func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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

	if err = entity.Update(cmd.Name(), cmd.Email(), cmd.Role()); err != nil {
		return err
	}

	if password := cmd.Password(); password != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		if err = entity.ChangePasswordHash(string(hash)); err != nil {
			return err
		}
	}

	if err = userRepo.Update(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
