package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const suffixLength = 5

// TrackingNumberChecker answers whether a candidate tracking number is
// already taken. The parcel repository satisfies it.
type TrackingNumberChecker interface {
	ExistsTrackingNumber(ctx context.Context, trackingNumber parcel.TrackingNumber) (bool, error)
}

// TrackingNumberGenerator produces unique parcel identifiers of the form
// PCL<unix-seconds><5 uppercase alphanumerics>.
//
// Uniqueness is guaranteed at the point of generation by re-rolling the
// suffix until the checker reports the value free. The check-then-insert
// window is not closed here; the storage layer's unique index on the column
// turns a lost race into a conflict error instead of a silent duplicate.
type TrackingNumberGenerator struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewTrackingNumberGenerator creates a generator seeded from the clock.
func NewTrackingNumberGenerator() TrackingNumberGenerator {
	return TrackingNumberGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Generate produces a tracking number no existing parcel holds. The loop is
// unbounded: the suffix space is large enough that termination is a
// practical certainty, and the checker error path covers storage failures.
func (g TrackingNumberGenerator) Generate(
	ctx context.Context,
	checker TrackingNumberChecker,
) (parcel.TrackingNumber, error) {
	for {
		candidate := fmt.Sprintf("PCL%d%s", g.now().Unix(), g.randomSuffix())

		trackingNumber, err := parcel.NewTrackingNumber(candidate)
		if err != nil {
			return parcel.TrackingNumber{}, err
		}

		exists, err := checker.ExistsTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return parcel.TrackingNumber{}, err
		}
		if !exists {
			return trackingNumber, nil
		}
	}
}

func (g TrackingNumberGenerator) randomSuffix() string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixCharset[g.rnd.Intn(len(suffixCharset))]
	}
	return string(suffix)
}
