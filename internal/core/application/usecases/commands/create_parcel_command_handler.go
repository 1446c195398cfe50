package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
)

// ErrCourierRoleRequired is returned when the referenced user exists but does
// not hold the courier role.
var ErrCourierRoleRequired = errors.New("assigned user must have the courier role")

// CreateParcelCommandHandler handles parcel registration. It generates the
// tracking number, resolves the optional courier and customer references, and
// persists the new parcel in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
	generator  services.TrackingNumberGenerator
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	generator services.TrackingNumberGenerator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle processes the registration command and returns the created parcel,
// including its freshly generated tracking number. A courier reference must
// point at an existing user with the courier role; a customer reference must
// point at an existing customer.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateParcelCommand,
) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if courierID := cmd.CourierID(); courierID != nil {
		courier, err := uow.UserRepository().Get(ctx, *courierID)
		if err != nil {
			return nil, err
		}
		if !courier.IsCourier() {
			return nil, ErrCourierRoleRequired
		}
	}

	if customerID := cmd.CustomerID(); customerID != nil {
		if _, err := uow.CustomerRepository().Get(ctx, *customerID); err != nil {
			return nil, err
		}
	}

	parcelRepo := uow.ParcelRepository()
	trackingNumber, err := h.generator.Generate(ctx, parcelRepo)
	if err != nil {
		return nil, err
	}

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		trackingNumber,
		cmd.Details(),
		cmd.Status(),
		cmd.CourierID(),
		cmd.CustomerID(),
	)
	if err != nil {
		return nil, err
	}

	if err = parcelRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
