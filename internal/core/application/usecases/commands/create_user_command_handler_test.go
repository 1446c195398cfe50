package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserCommandHandler_Handle_AdminCreatesUser(t *testing.T) {
	ctx := t.Context()
	adminID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(
		adminID, userID, "alice", "alice@example.com", "s3cret-pass", user.Courier,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, adminID).
		Return(testUser(t, adminID, "root", user.Admin), nil).Once()
	userRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.ID().IsEqual(userID) &&
			u.Role() == user.Courier &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte("s3cret-pass")) == nil
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_NonAdminRejected(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(
		actorID, kernel.NewUUID(), "alice", "alice@example.com", "s3cret-pass", user.Courier,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, actorID).
		Return(testUser(t, actorID, "carol", user.Warehouse), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCreateUserCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewCreateUserCommand(
		kernel.NewUUID(), kernel.NewUUID(), "alice", "alice@example.com", "short", user.Courier,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateUserCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewCreateUserCommand(
		kernel.NewUUID(), kernel.NewUUID(), "alice", "alice@example.com", "s3cret-pass", user.UnknownRole,
	)
	require.Error(t, err)
}
