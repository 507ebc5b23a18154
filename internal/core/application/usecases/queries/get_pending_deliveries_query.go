// Package queries contains read-only operations over the database.
// Implements the Query side of the CQRS architecture with raw SQL read
// models, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// PendingDeliveriesLimit caps the pending-deliveries read model. The courier
// app shows a bounded work queue; anything beyond the oldest 50 is noise.
const PendingDeliveriesLimit = 50

// GetPendingDeliveriesQuery retrieves deliveries still awaiting a courier,
// oldest first.
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query for the pending work queue.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// GetPendingDeliveriesQueryResponse is one row of the pending work queue.
type GetPendingDeliveriesQueryResponse struct {
	ID                 kernel.UUID
	StoreID            kernel.UUID
	CustomerID         kernel.UUID
	Origin             string
	Destination        string
	ProductDescription string
	Fee                decimal.Decimal
	Tip                decimal.Decimal
	CreatedAt          time.Time
}
