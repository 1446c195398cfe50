package commands

import (
	"context"

	"parcels/internal/core/domain/model/user"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserCommandHandler handles back-office account creation. Only admins
// may create accounts; the email must be unique, which the storage layer
// reports as a conflict.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user creation.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command. The password is bcrypt-hashed here;
// the plaintext never crosses into the domain or storage layers.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
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

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	entity, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), string(hash), cmd.Role())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, entity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
