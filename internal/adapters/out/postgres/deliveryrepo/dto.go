// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, converting between the domain entity and its
// relational representation.
package deliveryrepo

import (
	"time"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The status is stored in its textual form so the rows stay
// readable and the enum can be reordered without a migration.
type DeliveryDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID          *uuid.UUID      `gorm:"type:uuid;index"`
	Origin             string          `gorm:"type:varchar(255)"`
	Destination        string          `gorm:"type:varchar(255);not null"`
	ProductDescription string          `gorm:"type:text"`
	Fee                decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Tip                decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	EstimatedMinutes   *int            `gorm:"type:int"`
	Status             string          `gorm:"type:varchar(32);not null;index"`
	Notes              string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"not null"`
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

// TableName overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var courierID *uuid.UUID
	if aggregate.Courier() != nil {
		raw := aggregate.Courier().Bytes()
		courierID = &raw
	}

	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		StoreID:            aggregate.StoreID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		CourierID:          courierID,
		Origin:             aggregate.Origin(),
		Destination:        aggregate.Destination(),
		ProductDescription: aggregate.ProductDescription(),
		Fee:                aggregate.Fee(),
		Tip:                aggregate.Tip(),
		EstimatedMinutes:   aggregate.EstimatedMinutes(),
		Status:             aggregate.Status().String(),
		Notes:              aggregate.Notes(),
		CreatedAt:          aggregate.CreatedAt(),
		StartedAt:          aggregate.StartedAt(),
		CompletedAt:        aggregate.CompletedAt(),
		CancelledAt:        aggregate.CancelledAt(),
	}
}

// toDomain converts a database DTO back into a delivery aggregate using
// RestoreDelivery, which re-applies the domain invariants.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
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

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, storeID, customerID,
		courierID,
		dto.Origin, dto.Destination, dto.ProductDescription,
		dto.Fee, dto.Tip,
		dto.EstimatedMinutes,
		status,
		dto.Notes,
		dto.CreatedAt,
		dto.StartedAt, dto.CompletedAt, dto.CancelledAt,
	)
}
