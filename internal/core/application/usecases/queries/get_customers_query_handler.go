package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomersQueryHandler serves the paginated customer list.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersQueryHandler creates a handler for customer list queries.
func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

// Handle executes the list query, newest customers first, each with the count
// of parcels still referencing it.
func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) (GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM customers`).
		Scan(&total).Error; err != nil {
		return GetCustomersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * CustomersPageSize
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.address,
			c.phone,
			COUNT(p.id) AS parcel_count,
			c.created_at
		FROM customers c
		LEFT JOIN parcels p ON p.customer_id = c.id
		GROUP BY c.id, c.name, c.address, c.phone, c.created_at
		ORDER BY c.created_at DESC, c.id
		LIMIT ? OFFSET ?
	`, CustomersPageSize, offset).Rows()
	if err != nil {
		return GetCustomersQueryResponse{}, err
	}
	defer rows.Close()

	customers := make([]CustomerSummaryResponse, 0)
	for rows.Next() {
		var summary CustomerSummaryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&summary.Name,
			&summary.Address,
			&summary.Phone,
			&summary.ParcelCount,
			&summary.CreatedAt,
		); err != nil {
			return GetCustomersQueryResponse{}, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetCustomersQueryResponse{}, idErr
		}
		summary.ID = customerID
		customers = append(customers, summary)
	}

	if err = rows.Err(); err != nil {
		return GetCustomersQueryResponse{}, err
	}

	return GetCustomersQueryResponse{
		Customers: customers,
		Total:     total,
		Page:      query.Page(),
	}, nil
}
