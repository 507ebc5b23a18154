package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetByEmail retrieves a store by login email.
	// Returns errs.ErrObjectNotFound when no store has that email.
	GetByEmail(ctx context.Context, email string) (*store.Store, error)

	// ExistsByEmail reports whether any store already uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
