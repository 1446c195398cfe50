package commands_test

import (
	"regexp"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), testDetails(t), parcel.UnknownStatus, nil, nil,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("ExistsTrackingNumber", mock.Anything, mock.AnythingOfType("parcel.TrackingNumber")).
		Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewTrackingNumberGenerator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, parcel.Pending, created.Status())
	assert.Regexp(t, regexp.MustCompile(`^PCL\d+[A-Z0-9]{5}$`), created.TrackingNumber().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_RerollsTakenTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), testDetails(t), parcel.InTransit, nil, nil,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("ExistsTrackingNumber", mock.Anything, mock.AnythingOfType("parcel.TrackingNumber")).
		Return(true, nil).Once()
	repo.On("ExistsTrackingNumber", mock.Anything, mock.AnythingOfType("parcel.TrackingNumber")).
		Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewTrackingNumberGenerator())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, parcel.InTransit, created.Status())
	repo.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_CourierRoleRequired(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), testDetails(t), parcel.UnknownStatus, &courierID, nil,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, courierID).
		Return(testUser(t, courierID, "morgan", user.Warehouse), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewTrackingNumberGenerator())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCourierRoleRequired)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, services.NewTrackingNumberGenerator())
	_, err := h.Handle(ctx, commands.CreateParcelCommand{})
	require.Error(t, err)
}
