package queries

import (
	"errors"
	"time"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
		"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
	)

	// ErrExactlyOneFilterRequired is returned unless the query names exactly
	// one of courier, store, or customer.
	ErrExactlyOneFilterRequired = errs.NewValueIsInvalidError(
		"exactly one of courier, store, or customer filter",
	)
)

// DeliveryHistoryLimit caps the history read model per request.
const DeliveryHistoryLimit = 100

// GetDeliveryHistoryQuery retrieves past and present deliveries for one
// party. The filter is exclusive: a courier's history, a store's history, or
// a customer's history, never a combination.
type GetDeliveryHistoryQuery struct {
	courierID  *kernel.UUID
	storeID    *kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a history query. Exactly one of the
// three ids must be non-nil.
func NewGetDeliveryHistoryQuery(courierID, storeID, customerID *kernel.UUID) (GetDeliveryHistoryQuery, error) {
	filters := 0
	for _, id := range []*kernel.UUID{courierID, storeID, customerID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return GetDeliveryHistoryQuery{}, err
		}
		filters++
	}
	if filters != 1 {
		return GetDeliveryHistoryQuery{}, ErrExactlyOneFilterRequired
	}

	return GetDeliveryHistoryQuery{
		courierID:  courierID,
		storeID:    storeID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// CourierID returns the courier filter, or nil.
func (q GetDeliveryHistoryQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// StoreID returns the store filter, or nil.
func (q GetDeliveryHistoryQuery) StoreID() *kernel.UUID {
	return q.storeID
}

// CustomerID returns the customer filter, or nil.
func (q GetDeliveryHistoryQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// GetDeliveryHistoryQueryResponse is one row of a party's delivery history.
type GetDeliveryHistoryQueryResponse struct {
	ID          kernel.UUID
	CourierID   *kernel.UUID
	Status      string
	Destination string
	Fee         decimal.Decimal
	Tip         decimal.Decimal
	CreatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}
