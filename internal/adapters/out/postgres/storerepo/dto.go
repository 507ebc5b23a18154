// Package storerepo provides data transfer objects and mapping functions
// for store persistence.
package storerepo

import (
	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
type StoreDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(32)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Account().Name(),
		Email:        aggregate.Account().Email(),
		Phone:        aggregate.Account().Phone(),
		PasswordHash: aggregate.Account().PasswordHash(),
		Address:      aggregate.Address(),
	}
}

// toDomain converts a database DTO back into a store aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(dto.Name, dto.Email, dto.Phone, dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, acc, dto.Address)
}
