package commands

import (
	"errors"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand represents a courier-initiated working-state
// change (going online, pausing, going offline).
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	courierID    kernel.UUID
	availability courier.Availability

	guard guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates a command to change a courier's
// availability.
func NewSetCourierAvailabilityCommand(
	courierID kernel.UUID,
	availability courier.Availability,
) (SetCourierAvailabilityCommand, error) {
	cmd := SetCourierAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		availability.Validate(),
	); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	cmd.availability = availability
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

// CourierID returns the courier to update.
func (c SetCourierAvailabilityCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Availability returns the target working state.
func (c SetCourierAvailabilityCommand) Availability() courier.Availability {
	return c.availability
}

func (c *SetCourierAvailabilityCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.courierID = id
	return nil
}
