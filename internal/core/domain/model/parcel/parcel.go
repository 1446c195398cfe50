package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root of the tracking domain. It owns the audit
// trail: every status change and courier change flows through its methods,
// which emit the HistoryEntry to persist alongside the parcel itself.
//
// Invariants:
//   - the tracking number is assigned once, at creation, and never mutated
//   - status belongs to the closed Status set; no transition graph applies
//   - a status-preserving update emits no history entry
type Parcel struct {
	id             kernel.UUID
	trackingNumber TrackingNumber
	details        Details
	status         Status
	courierID      *kernel.UUID
	customerID     *kernel.UUID

	isConstructed bool
}

// NewParcel creates a parcel at registration time. A zero-value status
// defaults to Pending, mirroring the storage default for parcels created
// without an explicit status.
func NewParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	details Details,
	status Status,
	courierID *kernel.UUID,
	customerID *kernel.UUID,
) (*Parcel, error) {
	if status == UnknownStatus {
		status = Pending
	}
	return RestoreParcel(id, trackingNumber, details, status, courierID, customerID)
}

// RestoreParcel reconstructs a parcel from persistence. Unlike NewParcel it
// requires an explicit valid status.
func RestoreParcel(
	id kernel.UUID,
	trackingNumber TrackingNumber,
	details Details,
	status Status,
	courierID *kernel.UUID,
	customerID *kernel.UUID,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setDetails(details),
		p.setStatus(status),
		p.SetCourier(courierID),
		p.SetCustomer(customerID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID { return p.id }

// TrackingNumber returns the immutable public identifier.
func (p *Parcel) TrackingNumber() TrackingNumber { return p.trackingNumber }

// Details returns the descriptive fields.
func (p *Parcel) Details() Details { return p.details }

// Status returns the current delivery status.
func (p *Parcel) Status() Status { return p.status }

// Courier returns the assigned courier's user ID, or nil.
func (p *Parcel) Courier() *kernel.UUID { return p.courierID }

// Customer returns the associated customer's ID, or nil.
func (p *Parcel) Customer() *kernel.UUID { return p.customerID }

// UpdateDetails replaces the descriptive fields. It never touches status,
// courier or the tracking number.
func (p *Parcel) UpdateDetails(details Details) error {
	return p.setDetails(details)
}

// ChangeStatus moves the parcel to newStatus and returns the audit entry to
// append. When newStatus equals the current status nothing changes and the
// returned entry is nil: callers use that to signal "unchanged" without an
// error, and no history row is written even if a note was supplied.
func (p *Parcel) ChangeStatus(newStatus Status, actorID *kernel.UUID, note *string) (*HistoryEntry, error) {
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}
	if newStatus == p.status {
		return nil, nil
	}

	oldStatus := p.status
	p.status = newStatus

	entry, err := NewHistoryEntry(kernel.NewUUID(), p.id, &oldStatus, newStatus, actorID, note)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// AssignCourier assigns, changes or clears (nil) the courier and returns the
// audit entry to append. The entry reuses the status columns with old and
// new status both set to the current status; the supplied note carries the
// human-readable description of the change. An unchanged assignment returns
// a nil entry and leaves the parcel untouched.
func (p *Parcel) AssignCourier(courierID *kernel.UUID, actorID *kernel.UUID, note string) (*HistoryEntry, error) {
	if sameID(p.courierID, courierID) {
		return nil, nil
	}
	if err := p.SetCourier(courierID); err != nil {
		return nil, err
	}

	current := p.status
	entry, err := NewHistoryEntry(kernel.NewUUID(), p.id, &current, current, actorID, &note)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetCourier replaces the courier reference without emitting history.
// The full-update path uses it; only the assign operation records an entry.
func (p *Parcel) SetCourier(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	p.courierID = courierID
	return nil
}

// SetCustomer replaces the customer reference.
func (p *Parcel) SetCustomer(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(tn TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	p.trackingNumber = tn
	return nil
}

func (p *Parcel) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.details = details
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func sameID(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}
