package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler serves the customer detail view.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer detail queries.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the detail query: the customer row plus every parcel still
// referencing it, newest first.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerQuery,
) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, phone, created_at, updated_at
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	var resp GetCustomerQueryResponse
	var id uuid.UUID

	err := row.Scan(&id, &resp.Name, &resp.Address, &resp.Phone, &resp.CreatedAt, &resp.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCustomerQueryResponse{}, errs.NewObjectNotFoundError(
			"customer", query.CustomerID().String(),
		)
	}
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	parcels, err := h.loadParcels(ctx, query.CustomerID())
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}
	resp.Parcels = parcels

	return resp, nil
}

func (h GetCustomerQueryHandler) loadParcels(
	ctx context.Context,
	customerID kernel.UUID,
) ([]ParcelSummaryResponse, error) {
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
		WHERE p.customer_id = ?
		ORDER BY p.created_at DESC, p.id
	`, customerID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]ParcelSummaryResponse, 0)
	for rows.Next() {
		var summary ParcelSummaryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&summary.TrackingNumber,
			&summary.RecipientName,
			&summary.Status,
			&summary.CourierName,
			&summary.CustomerName,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		); err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = parcelID
		parcels = append(parcels, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
