package commands

import (
	"context"
)

// DeleteParcelCommandHandler removes a parcel. History rows cascade away at
// the storage layer; nothing else references a parcel.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
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

	if err := uow.ParcelRepository().Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
