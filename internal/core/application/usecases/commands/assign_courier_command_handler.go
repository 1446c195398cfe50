package commands

import (
	"context"
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"
)

// noCourierName stands in for an absent courier in history notes, so
// "Courier changed from None to Alice" reads naturally.
const noCourierName = "None"

// AssignCourierCommandHandler handles courier assignment on a parcel. The
// change is recorded in the audit trail as an entry whose old and new status
// both equal the parcel's current status, with a note naming both couriers.
//
// Example:
//
//	cmd, _ := commands.NewAssignCourierCommand(parcelID, &courierID, &actorID)
//	changed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !changed {
//	    log.Print("courier already assigned, nothing recorded")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment. A non-nil courier must exist and hold the
// courier role. Re-assigning the current courier is reported as unchanged and
// writes nothing.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (bool, error) {
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

	userRepo := uow.UserRepository()
	parcelRepo := uow.ParcelRepository()

	aggregate, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return false, err
	}

	newName := noCourierName
	if courierID := cmd.CourierID(); courierID != nil {
		courier, courierErr := userRepo.Get(ctx, *courierID)
		if courierErr != nil {
			return false, courierErr
		}
		if !courier.IsCourier() {
			return false, ErrCourierRoleRequired
		}
		newName = courier.Name()
	}

	oldName := courierName(ctx, userRepo, aggregate.Courier())
	note := fmt.Sprintf("Courier changed from %s to %s", oldName, newName)
	entry, err := aggregate.AssignCourier(cmd.CourierID(), cmd.ActorID(), note)
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

// courierName resolves a courier reference to a display name. A dangling
// reference (courier deleted after assignment) degrades to the placeholder
// rather than failing the operation.
func courierName(ctx context.Context, repo ports.UserRepository, id *kernel.UUID) string {
	if id == nil {
		return noCourierName
	}

	courier, err := repo.Get(ctx, *id)
	if err != nil {
		return noCourierName
	}
	return courier.Name()
}
