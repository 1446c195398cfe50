package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler serves the public tracking endpoint. It only ever
// selects the non-PII columns.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for public tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. An unknown tracking number is an
// errs.ErrObjectNotFound, indistinguishable from a malformed-but-plausible
// one.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_number,
			status,
			weight,
			dimensions,
			created_at,
			updated_at
		FROM parcels
		WHERE tracking_number = ?
	`, query.TrackingNumber().String()).Row()

	var resp TrackParcelQueryResponse
	err := row.Scan(
		&resp.TrackingNumber,
		&resp.Status,
		&resp.Weight,
		&resp.Dimensions,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
			"tracking_number", query.TrackingNumber().String(),
		)
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return resp, nil
}
