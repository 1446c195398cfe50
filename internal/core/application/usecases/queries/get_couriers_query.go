package queries

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery retrieves the accounts eligible for parcel assignment,
// meaning users with the courier role.
type GetCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a courier list query.
func NewGetCouriersQuery() GetCouriersQuery {
	return GetCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}
