package queries

import (
	"errors"
	"fmt"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTopRatedCouriersQueryIsNotConstructed = errors.New(
	"GetTopRatedCouriersQuery must be created via NewGetTopRatedCouriersQuery constructor",
)

// GetTopRatedCouriersQuery retrieves the leaderboard of couriers by
// aggregate rating.
type GetTopRatedCouriersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetTopRatedCouriersQuery creates a leaderboard query. The limit must be
// positive.
func NewGetTopRatedCouriersQuery(limit int) (GetTopRatedCouriersQuery, error) {
	if limit <= 0 {
		return GetTopRatedCouriersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"limit",
			fmt.Errorf("%d is not greater than 0", limit),
		)
	}

	return GetTopRatedCouriersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTopRatedCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopRatedCouriersQueryIsNotConstructed)
}

// Limit returns the maximum number of rows to return.
func (q GetTopRatedCouriersQuery) Limit() int {
	return q.limit
}

// GetTopRatedCouriersQueryResponse is one leaderboard row.
type GetTopRatedCouriersQueryResponse struct {
	ID                  kernel.UUID
	Name                string
	Rating              decimal.Decimal
	RatingCount         int
	CompletedDeliveries int
}
