package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByEmail retrieves a courier by login email.
	// Returns errs.ErrObjectNotFound when no courier has that email.
	GetByEmail(ctx context.Context, email string) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers whose availability is Available.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)

	// ExistsByEmail reports whether any courier already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByDocument reports whether any courier already uses the national
	// id document.
	ExistsByDocument(ctx context.Context, document string) (bool, error)
}
