package commands

import (
	"context"
)

// UpdateParcelStatusCommandHandler moves a parcel through its lifecycle.
// Every real change appends one history entry in the same transaction as the
// parcel write; a request for the current status is reported as unchanged,
// not as an error.
type UpdateParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status updates.
func NewUpdateParcelStatusCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update. The returned flag reports whether the
// status actually changed; false means nothing was written.
func (h UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return false, err
	}

	entry, err := aggregate.ChangeStatus(cmd.Status(), cmd.ActorID(), cmd.Note())
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}
	if err = parcelRepo.AddHistory(ctx, *entry); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
