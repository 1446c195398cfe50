package commands

import (
	"context"
)

// DeleteCustomerCommandHandler removes a customer. The SET NULL constraint on
// parcels.customer_id clears the reference on any parcel still pointing at
// the row.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	if err := uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
