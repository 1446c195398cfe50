package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignCourierCommandHandler_Handle_FirstAssignment(t *testing.T) {
	ctx := t.Context()
	existing := testParcel(t, parcel.Pending, nil)
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(existing.ID(), &courierID, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, courierID).
		Return(testUser(t, courierID, "alice", user.Courier), nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	parcelRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	parcelRepo.On("AddHistory", mock.Anything, mock.MatchedBy(func(e parcel.HistoryEntry) bool {
		return *e.OldStatus() == parcel.Pending &&
			e.NewStatus() == parcel.Pending &&
			e.Notes() != nil && *e.Notes() == "Courier changed from None to alice"
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, existing.Courier())
	assert.True(t, existing.Courier().IsEqual(courierID))
	parcelRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()
	oldCourierID := kernel.NewUUID()
	existing := testParcel(t, parcel.InTransit, &oldCourierID)
	newCourierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(existing.ID(), &newCourierID, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, newCourierID).
		Return(testUser(t, newCourierID, "bob", user.Courier), nil).Once()
	userRepo.On("Get", mock.Anything, oldCourierID).
		Return(testUser(t, oldCourierID, "alice", user.Courier), nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	parcelRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	parcelRepo.On("AddHistory", mock.Anything, mock.MatchedBy(func(e parcel.HistoryEntry) bool {
		return *e.OldStatus() == parcel.InTransit &&
			e.NewStatus() == parcel.InTransit &&
			e.Notes() != nil && *e.Notes() == "Courier changed from alice to bob"
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, changed)
	parcelRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_SameCourierIsNoOp(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	existing := testParcel(t, parcel.InTransit, &courierID)
	cmd, err := commands.NewAssignCourierCommand(existing.ID(), &courierID, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, courierID).
		Return(testUser(t, courierID, "alice", user.Courier), nil).Twice()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, changed)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	parcelRepo.AssertNotCalled(t, "AddHistory", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignCourierCommandHandler_Handle_ClearCourier(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	existing := testParcel(t, parcel.OutForDelivery, &courierID)
	cmd, err := commands.NewAssignCourierCommand(existing.ID(), nil, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, courierID).
		Return(testUser(t, courierID, "alice", user.Courier), nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	parcelRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	parcelRepo.On("AddHistory", mock.Anything, mock.MatchedBy(func(e parcel.HistoryEntry) bool {
		return e.Notes() != nil && *e.Notes() == "Courier changed from alice to None"
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory)
	changed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, existing.Courier())
	parcelRepo.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_NonCourierRejected(t *testing.T) {
	ctx := t.Context()
	existing := testParcel(t, parcel.Pending, nil)
	userID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(existing.ID(), &userID, nil)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, userID).
		Return(testUser(t, userID, "admin", user.Admin), nil).Once()

	parcelRepo := new(MockParcelRepository)
	parcelRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignCourierCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCourierRoleRequired)
	assert.Nil(t, existing.Courier())
}
