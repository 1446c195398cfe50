package queries

import (
	"context"

	"parcels/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// CountPendingParcelsQueryHandler serves the pending-backlog report.
type CountPendingParcelsQueryHandler struct {
	db *gorm.DB
}

// NewCountPendingParcelsQueryHandler creates a handler for backlog counts.
func NewCountPendingParcelsQueryHandler(db *gorm.DB) CountPendingParcelsQueryHandler {
	return CountPendingParcelsQueryHandler{db: db}
}

// Handle returns the number of parcels currently in the pending status.
func (h CountPendingParcelsQueryHandler) Handle(
	ctx context.Context,
	query CountPendingParcelsQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM parcels WHERE status = ?`, parcel.Pending.String()).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
