package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// CustomersPageSize is the fixed page size of the customer list.
const CustomersPageSize = 20

// GetCustomersQuery retrieves one page of the customer list, newest first.
type GetCustomersQuery struct {
	page int

	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a list query for the given 1-based page.
func NewGetCustomersQuery(page int) (GetCustomersQuery, error) {
	if page < 1 {
		return GetCustomersQuery{}, errs.NewValueIsInvalidError("page")
	}

	return GetCustomersQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// Page returns the requested 1-based page.
func (q GetCustomersQuery) Page() int {
	return q.page
}

// CustomerSummaryResponse is one row of the customer list. ParcelCount is the
// number of parcels currently referencing the customer.
type CustomerSummaryResponse struct {
	ID          kernel.UUID
	Name        string
	Address     string
	Phone       *string
	ParcelCount int64
	CreatedAt   time.Time
}

// GetCustomersQueryResponse is one page of customers plus the total count.
type GetCustomersQueryResponse struct {
	Customers []CustomerSummaryResponse
	Total     int64
	Page      int
}
