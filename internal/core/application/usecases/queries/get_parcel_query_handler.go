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

// GetParcelQueryHandler serves the back-office parcel detail view.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail queries.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the detail query: the parcel row with courier and customer
// resolved, plus the ten most recent history entries with acting-user names.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp, err := h.loadParcel(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	history, err := h.loadHistory(ctx, query.ParcelID())
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	resp.History = history

	return resp, nil
}

func (h GetParcelQueryHandler) loadParcel(
	ctx context.Context,
	parcelID kernel.UUID,
) (GetParcelQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.tracking_number,
			p.sender_name,
			p.sender_address,
			p.recipient_name,
			p.recipient_address,
			p.recipient_phone,
			p.status,
			p.weight,
			p.dimensions,
			p.notes,
			p.courier_id,
			u.name AS courier_name,
			p.customer_id,
			c.name AS customer_name,
			p.created_at,
			p.updated_at
		FROM parcels p
		LEFT JOIN users u ON u.id = p.courier_id
		LEFT JOIN customers c ON c.id = p.customer_id
		WHERE p.id = ?
	`, parcelID.Bytes()).Row()

	var resp GetParcelQueryResponse
	var id uuid.UUID
	var courierID, customerID *uuid.UUID
	var courierName, customerName sql.NullString

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&resp.SenderName,
		&resp.SenderAddress,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.RecipientPhone,
		&resp.Status,
		&resp.Weight,
		&resp.Dimensions,
		&resp.Notes,
		&courierID,
		&courierName,
		&customerID,
		&customerName,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", parcelID.String())
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	if courierID != nil && courierName.Valid {
		refID, refErr := kernel.UUIDFromBytes((*courierID)[:])
		if refErr != nil {
			return GetParcelQueryResponse{}, refErr
		}
		resp.Courier = &UserRefResponse{ID: refID, Name: courierName.String}
	}

	if customerID != nil && customerName.Valid {
		refID, refErr := kernel.UUIDFromBytes((*customerID)[:])
		if refErr != nil {
			return GetParcelQueryResponse{}, refErr
		}
		resp.Customer = &CustomerRefResponse{ID: refID, Name: customerName.String}
	}

	return resp, nil
}

func (h GetParcelQueryHandler) loadHistory(
	ctx context.Context,
	parcelID kernel.UUID,
) ([]HistoryEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ph.id,
			ph.old_status,
			ph.new_status,
			u.name AS user_name,
			ph.notes,
			ph.created_at
		FROM parcel_histories ph
		LEFT JOIN users u ON u.id = ph.user_id
		WHERE ph.parcel_id = ?
		ORDER BY ph.created_at DESC, ph.id DESC
		LIMIT ?
	`, parcelID.Bytes(), HistoryEntriesLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]HistoryEntryResponse, 0)
	for rows.Next() {
		var entry HistoryEntryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&entry.OldStatus,
			&entry.NewStatus,
			&entry.UserName,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
