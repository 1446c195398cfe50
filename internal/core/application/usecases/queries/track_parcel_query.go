package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/guard"
)

var ErrTrackParcelQueryIsNotConstructed = errors.New(
	"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
)

// TrackParcelQuery is the public, unauthenticated lookup by tracking number.
type TrackParcelQuery struct {
	trackingNumber parcel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a public tracking query. The raw value must
// match the tracking number format; a malformed value fails here rather than
// reaching the database.
func NewTrackParcelQuery(rawTrackingNumber string) (TrackParcelQuery, error) {
	trackingNumber, err := parcel.NewTrackingNumber(rawTrackingNumber)
	if err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the value to look up.
func (q TrackParcelQuery) TrackingNumber() parcel.TrackingNumber {
	return q.trackingNumber
}

// TrackParcelQueryResponse is the reduced public view of a parcel. It
// deliberately carries no names, addresses, phone numbers, internal notes or
// history.
type TrackParcelQueryResponse struct {
	TrackingNumber string
	Status         string
	Weight         *float64
	Dimensions     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
