package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer together with its parcels.
type GetCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a customer detail query.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer to load.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerQueryResponse is the customer detail view: the record plus its
// parcels, newest first.
type GetCustomerQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Phone     *string
	Parcels   []ParcelSummaryResponse
	CreatedAt time.Time
	UpdatedAt time.Time
}
