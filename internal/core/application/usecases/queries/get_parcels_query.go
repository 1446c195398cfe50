// Package queries contains the read side of the application. Query handlers
// run raw SQL over the shared GORM connection and return flat response
// structs; they never load aggregates or open transactions.
package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// ParcelsPageSize is the fixed page size of the parcel list.
const ParcelsPageSize = 20

// GetParcelsQuery retrieves one page of the parcel list, newest first.
type GetParcelsQuery struct {
	page int

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a list query for the given 1-based page.
func NewGetParcelsQuery(page int) (GetParcelsQuery, error) {
	if page < 1 {
		return GetParcelsQuery{}, errs.NewValueIsInvalidError("page")
	}

	return GetParcelsQuery{
		page:  page,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Page returns the requested 1-based page.
func (q GetParcelsQuery) Page() int {
	return q.page
}

// ParcelSummaryResponse is one row of the parcel list, with courier and
// customer names resolved for display.
type ParcelSummaryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	RecipientName  string
	Status         string
	CourierName    *string
	CustomerName   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GetParcelsQueryResponse is one page of parcels plus the total row count.
type GetParcelsQueryResponse struct {
	Parcels []ParcelSummaryResponse
	Total   int64
	Page    int
}
