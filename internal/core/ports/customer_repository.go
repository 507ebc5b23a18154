package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/customer"
	"deliveryhub/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by login email.
	// Returns errs.ErrObjectNotFound when no customer has that email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// ExistsByEmail reports whether any customer already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
