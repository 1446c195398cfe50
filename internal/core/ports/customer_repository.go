package ports

import (
	"context"

	"parcels/internal/core/domain/model/customer"
	"parcels/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, entity *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer; parcels referencing it keep existing
	// with the reference cleared at the storage layer.
	Delete(ctx context.Context, id kernel.UUID) error
}
