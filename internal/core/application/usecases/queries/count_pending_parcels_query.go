package queries

import (
	"errors"

	"parcels/internal/pkg/guard"
)

var ErrCountPendingParcelsQueryIsNotConstructed = errors.New(
	"CountPendingParcelsQuery must be created via NewCountPendingParcelsQuery constructor",
)

// CountPendingParcelsQuery counts parcels still waiting to leave the
// warehouse. The backlog report job runs it periodically.
type CountPendingParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountPendingParcelsQuery creates a backlog count query.
func NewCountPendingParcelsQuery() CountPendingParcelsQuery {
	return CountPendingParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountPendingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrCountPendingParcelsQueryIsNotConstructed)
}
