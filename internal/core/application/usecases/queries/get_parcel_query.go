package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// HistoryEntriesLimit caps how many audit entries the detail view returns.
const HistoryEntriesLimit = 10

// GetParcelQuery retrieves one parcel with its references and recent history.
type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a detail query.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the parcel to load.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// UserRefResponse names a referenced back-office user.
type UserRefResponse struct {
	ID   kernel.UUID
	Name string
}

// CustomerRefResponse names a referenced customer.
type CustomerRefResponse struct {
	ID   kernel.UUID
	Name string
}

// HistoryEntryResponse is one audit-trail row, newest first in the detail
// view. UserName is resolved for display and nil for system entries or
// deleted users.
type HistoryEntryResponse struct {
	ID        kernel.UUID
	OldStatus *string
	NewStatus string
	UserName  *string
	Notes     *string
	CreatedAt time.Time
}

// GetParcelQueryResponse is the full back-office view of one parcel.
type GetParcelQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	RecipientPhone   *string
	Status           string
	Weight           *float64
	Dimensions       *string
	Notes            *string
	Courier          *UserRefResponse
	Customer         *CustomerRefResponse
	History          []HistoryEntryResponse
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
