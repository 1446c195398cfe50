package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelCommandHandler_Handle_StatusChangeAppendsHistory(t *testing.T) {
	ctx := t.Context()
	existing := testParcel(t, parcel.Pending, nil)
	note := "left warehouse"
	details, err := parcel.NewDetails(
		"Acme Warehouse", "1 Depot Road", "Jordan Reyes", "5 New Street",
		nil, nil, nil, nil,
	)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateParcelCommand(
		existing.ID(), details, parcel.InTransit, nil, nil, nil, &note,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	repo.On("AddHistory", mock.Anything, mock.MatchedBy(func(e parcel.HistoryEntry) bool {
		return e.NewStatus() == parcel.InTransit &&
			e.Notes() != nil && *e.Notes() == note
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, "5 New Street", existing.Details().RecipientAddress())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateParcelCommandHandler_Handle_SameStatusWritesNoHistory(t *testing.T) {
	ctx := t.Context()
	existing := testParcel(t, parcel.Pending, nil)
	cmd, err := commands.NewUpdateParcelCommand(
		existing.ID(), testDetails(t), parcel.Pending, nil, nil, nil, nil,
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "AddHistory", mock.Anything, mock.Anything)
}
