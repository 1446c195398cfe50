// Package parcelrepo provides the GORM-backed repository for parcel
// aggregates and their append-only history rows.
package parcelrepo

import (
	"time"

	"parcels/internal/adapters/out/postgres/customerrepo"
	"parcels/internal/adapters/out/postgres/userrepo"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is the database representation of a parcel.
//
// tracking_number carries a unique index so uniqueness holds at the storage
// layer regardless of the generator's check-then-insert window. Courier and
// customer references clear (SET NULL) when the referenced row is deleted;
// the parcel itself survives.
type ParcelDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber   string    `gorm:"uniqueIndex;not null"`
	SenderName       string    `gorm:"not null"`
	SenderAddress    string    `gorm:"type:text;not null"`
	RecipientName    string    `gorm:"not null"`
	RecipientAddress string    `gorm:"type:text;not null"`
	RecipientPhone   *string
	Status           string   `gorm:"not null;default:pending;index"`
	Weight           *float64 `gorm:"type:numeric(8,2)"`
	Dimensions       *string
	Notes            *string    `gorm:"type:text"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Courier  *userrepo.UserDTO         `gorm:"foreignKey:CourierID;constraint:OnDelete:SET NULL"`
	Customer *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ParcelHistoryDTO is the database representation of one audit entry.
// Rows are insert-only and cascade away with their parcel.
type ParcelHistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;not null;index"`
	OldStatus *string
	NewStatus string     `gorm:"not null"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	Notes     *string    `gorm:"type:text"`
	CreatedAt time.Time

	Parcel *ParcelDTO        `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
	User   *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName overrides GORM's default naming to use "parcel_histories".
func (ParcelHistoryDTO) TableName() string {
	return "parcel_histories"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var customerID *uuid.UUID
	if id := aggregate.Customer(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	details := aggregate.Details()
	return ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		TrackingNumber:   aggregate.TrackingNumber().String(),
		SenderName:       details.SenderName(),
		SenderAddress:    details.SenderAddress(),
		RecipientName:    details.RecipientName(),
		RecipientAddress: details.RecipientAddress(),
		RecipientPhone:   details.RecipientPhone(),
		Status:           aggregate.Status().String(),
		Weight:           details.Weight(),
		Dimensions:       details.Dimensions(),
		Notes:            details.Notes(),
		CourierID:        courierID,
		CustomerID:       customerID,
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := parcel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	details, err := parcel.NewDetails(
		dto.SenderName,
		dto.SenderAddress,
		dto.RecipientName,
		dto.RecipientAddress,
		dto.RecipientPhone,
		dto.Weight,
		dto.Dimensions,
		dto.Notes,
	)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	return parcel.RestoreParcel(id, trackingNumber, details, status, courierID, customerID)
}

func historyFromDomain(entry parcel.HistoryEntry) ParcelHistoryDTO {
	var oldStatus *string
	if s := entry.OldStatus(); s != nil {
		str := s.String()
		oldStatus = &str
	}

	var userID *uuid.UUID
	if id := entry.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return ParcelHistoryDTO{
		ID:        entry.ID().Bytes(),
		ParcelID:  entry.ParcelID().Bytes(),
		OldStatus: oldStatus,
		NewStatus: entry.NewStatus().String(),
		UserID:    userID,
		Notes:     entry.Notes(),
	}
}
