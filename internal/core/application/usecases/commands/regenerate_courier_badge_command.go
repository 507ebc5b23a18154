package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var ErrRegenerateCourierBadgeCommandIsNotConstructed = errors.New(
	"RegenerateCourierBadgeCommand must be created via NewRegenerateCourierBadgeCommand constructor",
)

// RegenerateCourierBadgeCommand represents a request to invalidate a
// courier's QR badge and issue a fresh one.
type RegenerateCourierBadgeCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegenerateCourierBadgeCommand creates a command to reissue a badge.
func NewRegenerateCourierBadgeCommand(courierID kernel.UUID) (RegenerateCourierBadgeCommand, error) {
	cmd := RegenerateCourierBadgeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return RegenerateCourierBadgeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegenerateCourierBadgeCommand) Validate() error {
	return c.guard.Validate(ErrRegenerateCourierBadgeCommandIsNotConstructed)
}

// CourierID returns the courier whose badge is reissued.
func (c RegenerateCourierBadgeCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RegenerateCourierBadgeCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
