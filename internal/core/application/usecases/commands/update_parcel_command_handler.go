package commands

import (
	"context"
)

// UpdateParcelCommandHandler handles the full-update operation. Details,
// courier and customer references are replaced silently; only a status change
// appends a history entry, in the same transaction as the parcel write.
type UpdateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for full parcel updates.
func NewUpdateParcelCommandHandler(uowFactory UoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. A status equal to the current one
// writes no history row, whether or not a note was supplied.
func (h UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
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

	if courierID := cmd.CourierID(); courierID != nil {
		courier, err := uow.UserRepository().Get(ctx, *courierID)
		if err != nil {
			return err
		}
		if !courier.IsCourier() {
			return ErrCourierRoleRequired
		}
	}

	if customerID := cmd.CustomerID(); customerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return err
		}
	}

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Details()); err != nil {
		return err
	}
	if err = aggregate.SetCourier(cmd.CourierID()); err != nil {
		return err
	}
	if err = aggregate.SetCustomer(cmd.CustomerID()); err != nil {
		return err
	}

	entry, err := aggregate.ChangeStatus(cmd.Status(), cmd.ActorID(), cmd.Note())
	if err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if entry != nil {
		if err = parcelRepo.AddHistory(ctx, *entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
