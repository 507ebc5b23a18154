package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer's score for a courier. The score
// range check lives in the Courier aggregate; the command only validates
// identity.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	score     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a courier.
func NewSubmitRatingCommand(courierID kernel.UUID, score decimal.Decimal) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return SubmitRatingCommand{}, err
	}

	cmd.score = score
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// CourierID returns the courier being rated.
func (c SubmitRatingCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Score returns the submitted score.
func (c SubmitRatingCommand) Score() decimal.Decimal {
	return c.score
}

func (c *SubmitRatingCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
