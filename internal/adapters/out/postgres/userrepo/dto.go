// Package userrepo provides the GORM-backed repository for back-office
// users, including the mapping between the domain entity and its table.
package userrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the database representation of a user. Email carries a unique
// index; uniqueness is enforced at the storage layer, not only in code.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	Role         string    `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(entity *user.User) UserDTO {
	return UserDTO{
		ID:           entity.ID().Bytes(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.PasswordHash, role)
}
