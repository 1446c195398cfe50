// Package customerrepo provides the GORM-backed repository for customers.
package customerrepo

import (
	"time"

	"parcels/internal/core/domain/model/customer"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the database representation of a customer.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Address   string    `gorm:"type:text;not null"`
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(entity *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      entity.ID().Bytes(),
		Name:    entity.Name(),
		Address: entity.Address(),
		Phone:   entity.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Address, dto.Phone)
}
