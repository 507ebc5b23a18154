package services

import (
	"errors"

	"deliveryhub/internal/core/domain/model/courier"
)

// ErrNoSuitableCourier is returned when none of the candidate couriers can
// take a delivery, either because the list is empty or because every
// candidate is unavailable.
var ErrNoSuitableCourier = errors.New("no suitable courier found")

// Dispatcher is a domain service that ranks candidate couriers for a pending
// delivery. Candidates must be Available; the highest-rated courier wins,
// with more completed deliveries breaking ties. Selection is separate from
// assignment so the caller can serialize on the winner and re-check its
// active-delivery precondition before mutating anything.
type Dispatcher struct{}

// NewDispatcher creates a Dispatcher.
func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// SelectBest returns the best candidate courier. Returns ErrNoSuitableCourier
// when no candidate qualifies.
func (Dispatcher) SelectBest(couriers []*courier.Courier) (*courier.Courier, error) {
	var best *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		if best == nil || ranksHigher(c, best) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoSuitableCourier
	}

	return best, nil
}

func ranksHigher(a, b *courier.Courier) bool {
	if !a.Rating().Equal(b.Rating()) {
		return a.Rating().GreaterThan(b.Rating())
	}
	return a.CompletedDeliveries() > b.CompletedDeliveries()
}
