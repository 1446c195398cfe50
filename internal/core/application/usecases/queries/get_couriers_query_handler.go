package queries

import (
	"context"

	"parcels/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetCouriersQueryHandler serves the courier picker on the assignment screen.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersQueryHandler creates a handler for courier list queries.
func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle executes the list query, couriers only, ordered by name.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, created_at
		FROM users
		WHERE role = ?
		ORDER BY name, id
	`, user.Courier.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}
