package http

import (
	"time"

	"parcels/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParcelRequest is the body of parcel create and full-update calls.
type ParcelRequest struct {
	SenderName       string   `json:"sender_name"`
	SenderAddress    string   `json:"sender_address"`
	RecipientName    string   `json:"recipient_name"`
	RecipientAddress string   `json:"recipient_address"`
	RecipientPhone   *string  `json:"recipient_phone,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	Dimensions       *string  `json:"dimensions,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	Status           *string  `json:"status,omitempty"`
	CourierID        *string  `json:"courier_id,omitempty"`
	CustomerID       *string  `json:"customer_id,omitempty"`
	HistoryNote      *string  `json:"history_note,omitempty"`
}

// StatusRequest is the body of the status-only update.
type StatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// CourierAssignmentRequest is the body of the courier update. A null
// courier_id clears the assignment.
type CourierAssignmentRequest struct {
	CourierID *string `json:"courier_id"`
}

// CustomerRequest is the body of customer create and update calls.
type CustomerRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

// CreateUserRequest is the body of the account-creation call.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest is the body of the account-update call. A null password
// keeps the stored credential.
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Password *string `json:"password,omitempty"`
}

// RoleRequest is the body of the role-only update.
type RoleRequest struct {
	Role string `json:"role"`
}

// ParcelSummary is one row of parcel lists.
type ParcelSummary struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	RecipientName  string    `json:"recipient_name"`
	Status         string    `json:"status"`
	CourierName    *string   `json:"courier_name"`
	CustomerName   *string   `json:"customer_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ParcelListResponse is one page of parcels.
type ParcelListResponse struct {
	Parcels []ParcelSummary `json:"parcels"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
}

// EntityRef names a referenced entity.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HistoryEntry is one audit-trail row of the parcel detail view.
type HistoryEntry struct {
	ID        string    `json:"id"`
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UserName  *string   `json:"user_name"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// ParcelDetailResponse is the full back-office view of one parcel.
type ParcelDetailResponse struct {
	ID               string         `json:"id"`
	TrackingNumber   string         `json:"tracking_number"`
	SenderName       string         `json:"sender_name"`
	SenderAddress    string         `json:"sender_address"`
	RecipientName    string         `json:"recipient_name"`
	RecipientAddress string         `json:"recipient_address"`
	RecipientPhone   *string        `json:"recipient_phone"`
	Status           string         `json:"status"`
	Weight           *float64       `json:"weight"`
	Dimensions       *string        `json:"dimensions"`
	Notes            *string        `json:"notes"`
	Courier          *EntityRef     `json:"courier"`
	Customer         *EntityRef     `json:"customer"`
	History          []HistoryEntry `json:"history"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// CreatedParcelResponse confirms a registration with the generated
// tracking number.
type CreatedParcelResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

// ChangedResponse reports whether a lifecycle call modified anything.
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

// TrackingResponse is the public reduced view of a parcel.
type TrackingResponse struct {
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Weight         *float64  `json:"weight"`
	Dimensions     *string   `json:"dimensions"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustomerSummary is one row of the customer list.
type CustomerSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       *string   `json:"phone"`
	ParcelCount int64     `json:"parcel_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerListResponse is one page of customers.
type CustomerListResponse struct {
	Customers []CustomerSummary `json:"customers"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
}

// CustomerDetailResponse is one customer with its parcels.
type CustomerDetailResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Phone     *string         `json:"phone"`
	Parcels   []ParcelSummary `json:"parcels"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UserResponse is one back-office account. It never carries the password
// hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func parcelSummariesFromQuery(items []queries.ParcelSummaryResponse) []ParcelSummary {
	summaries := make([]ParcelSummary, len(items))
	for i, item := range items {
		summaries[i] = ParcelSummary{
			ID:             item.ID.String(),
			TrackingNumber: item.TrackingNumber,
			RecipientName:  item.RecipientName,
			Status:         item.Status,
			CourierName:    item.CourierName,
			CustomerName:   item.CustomerName,
			CreatedAt:      item.CreatedAt,
			UpdatedAt:      item.UpdatedAt,
		}
	}
	return summaries
}

func usersFromQuery(items []queries.UserResponse) []UserResponse {
	users := make([]UserResponse, len(items))
	for i, item := range items {
		users[i] = UserResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Email:     item.Email,
			Role:      item.Role,
			CreatedAt: item.CreatedAt,
		}
	}
	return users
}
