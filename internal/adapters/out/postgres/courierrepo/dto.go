// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. It implements the repository pattern for the
// courier aggregate, converting between the domain entity and its
// relational representation.
package courierrepo

import (
	"deliveryhub/internal/core/domain/model/account"
	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The flattened account fields live in the same row; email and
// document carry unique indexes backing the registration checks.
type CourierDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Email               string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone               string          `gorm:"type:varchar(32)"`
	PasswordHash        string          `gorm:"type:varchar(255);not null"`
	Document            string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	LicenseID           string          `gorm:"type:varchar(32)"`
	BadgeID             uuid.UUID       `gorm:"type:uuid;not null"`
	Availability        string          `gorm:"type:varchar(32);not null;index"`
	Rating              decimal.Decimal `gorm:"type:numeric(4,2);not null"`
	RatingCount         int             `gorm:"type:int;not null"`
	CompletedDeliveries int             `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Account().Name(),
		Email:               aggregate.Account().Email(),
		Phone:               aggregate.Account().Phone(),
		PasswordHash:        aggregate.Account().PasswordHash(),
		Document:            aggregate.Document(),
		LicenseID:           aggregate.LicenseID(),
		BadgeID:             aggregate.BadgeID().Bytes(),
		Availability:        aggregate.Availability().String(),
		Rating:              aggregate.Rating(),
		RatingCount:         aggregate.RatingCount(),
		CompletedDeliveries: aggregate.CompletedDeliveries(),
	}
}

// toDomain converts a database DTO back into a courier aggregate using
// RestoreCourier, which re-applies the domain invariants.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	badgeID, err := kernel.UUIDFromBytes(dto.BadgeID[:])
	if err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(dto.Name, dto.Email, dto.Phone, dto.PasswordHash)
	if err != nil {
		return nil, err
	}

	availability, err := courier.AvailabilityFromString(dto.Availability)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, acc,
		dto.Document, dto.LicenseID,
		badgeID,
		availability,
		dto.Rating,
		dto.RatingCount, dto.CompletedDeliveries,
	)
}
