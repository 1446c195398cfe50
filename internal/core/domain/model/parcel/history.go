package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via NewHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is one immutable record of the parcel audit trail. Entries
// are appended when the status changes and when the courier changes; they
// are never updated or deleted afterwards.
//
// A courier change reuses the status columns as a sentinel: old and new
// status are equal and the note describes the change. The shape is kept for
// compatibility with the stored history.
type HistoryEntry struct {
	id        kernel.UUID
	parcelID  kernel.UUID
	oldStatus *Status
	newStatus Status
	userID    *kernel.UUID
	notes     *string

	isConstructed bool
}

// NewHistoryEntry builds an audit record for a parcel.
//
// oldStatus is nil only for system edge cases (e.g. records imported without
// a prior state). userID is nil for system-initiated changes.
func NewHistoryEntry(
	id kernel.UUID,
	parcelID kernel.UUID,
	oldStatus *Status,
	newStatus Status,
	userID *kernel.UUID,
	notes *string,
) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := parcelID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if oldStatus != nil {
		if err := oldStatus.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}
	if err := newStatus.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}

	return HistoryEntry{
		id:            id,
		parcelID:      parcelID,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		userID:        userID,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created via NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (h HistoryEntry) ID() kernel.UUID { return h.id }

// ParcelID returns the owning parcel's identifier.
func (h HistoryEntry) ParcelID() kernel.UUID { return h.parcelID }

// OldStatus returns the status before the change, or nil.
func (h HistoryEntry) OldStatus() *Status { return h.oldStatus }

// NewStatus returns the status after the change.
func (h HistoryEntry) NewStatus() Status { return h.newStatus }

// UserID returns the acting user, or nil for system-initiated changes.
func (h HistoryEntry) UserID() *kernel.UUID { return h.userID }

// Notes returns the optional free-text note.
func (h HistoryEntry) Notes() *string { return h.notes }
