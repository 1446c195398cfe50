package queries

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler serves the paginated back-office parcel list.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel list queries.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the list query. Rows are ordered newest first; courier and
// customer names come from LEFT JOINs so unassigned parcels still appear.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) (GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelsQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM parcels`).
		Scan(&total).Error; err != nil {
		return GetParcelsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * ParcelsPageSize
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.recipient_name,
			p.status,
			u.name AS courier_name,
			c.name AS customer_name,
			p.created_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN users u ON u.id = p.courier_id
		LEFT JOIN customers c ON c.id = p.customer_id
		ORDER BY p.created_at DESC, p.id
		LIMIT ? OFFSET ?
	`, ParcelsPageSize, offset).Rows()
	if err != nil {
		return GetParcelsQueryResponse{}, err
	}
	defer rows.Close()

	parcels := make([]ParcelSummaryResponse, 0)
	for rows.Next() {
		var summary ParcelSummaryResponse
		var id uuid.UUID
		var createdAt, updatedAt time.Time

		if err = rows.Scan(
			&id,
			&summary.TrackingNumber,
			&summary.RecipientName,
			&summary.Status,
			&summary.CourierName,
			&summary.CustomerName,
			&createdAt,
			&updatedAt,
		); err != nil {
			return GetParcelsQueryResponse{}, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetParcelsQueryResponse{}, idErr
		}
		summary.ID = parcelID
		summary.CreatedAt = createdAt
		summary.UpdatedAt = updatedAt
		parcels = append(parcels, summary)
	}

	if err = rows.Err(); err != nil {
		return GetParcelsQueryResponse{}, err
	}

	return GetParcelsQueryResponse{
		Parcels: parcels,
		Total:   total,
		Page:    query.Page(),
	}, nil
}
