package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler serves the account list for the admin screens.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user list queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the list query, ordered by name.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanUsers(rows rowScanner) ([]UserResponse, error) {
	users := make([]UserResponse, 0)
	for rows.Next() {
		var resp UserResponse
		var id uuid.UUID

		if err := rows.Scan(&id, &resp.Name, &resp.Email, &resp.Role, &resp.CreatedAt); err != nil {
			return nil, err
		}

		userID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = userID
		users = append(users, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
