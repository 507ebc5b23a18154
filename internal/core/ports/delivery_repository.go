// Package ports defines repository and unit-of-work interfaces between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/delivery"
	"deliveryhub/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetOldestPending retrieves the oldest delivery still awaiting a courier.
	// Returns errs.ErrObjectNotFound when no delivery is pending.
	GetOldestPending(ctx context.Context) (*delivery.Delivery, error)

	// GetActiveByCourier retrieves the deliveries currently in flight for the
	// given courier. A delivery is active while its status is Collecting,
	// EnRouteToDestination, or ArrivedAtDestination. Returns an empty slice
	// when the courier has nothing in flight.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)
}
