package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates
// and their append-only history.
type ParcelRepository interface {
	// Add persists a new parcel. A tracking number collision surfaces as
	// a conflict error.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel. The tracking number
	// column is never written.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// Delete removes a parcel; its history rows cascade at the storage
	// layer.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsTrackingNumber reports whether any parcel holds the value.
	// Used by the tracking number generator's re-roll loop.
	ExistsTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (bool, error)

	// AddHistory appends an audit entry. Entries are never updated or
	// deleted individually.
	AddHistory(ctx context.Context, entry parcel.HistoryEntry) error
}
