package commands

import (
	"context"
	"fmt"

	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/keylock"
)

// AssignCourierCommandHandler binds a courier to a pending delivery.
//
// Preconditions checked inside the transaction:
//   - the delivery exists and is still awaiting pickup
//   - the courier exists and is Available
//   - the courier has no other delivery in flight
//
// The check-then-assign sequence for one courier is serialized with a keyed
// mutex, so two concurrent assignments against the same courier cannot both
// pass the active-delivery check.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyedMutex
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
// The lock registry is shared with the auto-dispatch handler so the
// per-courier serialization covers both assignment paths.
func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.KeyedMutex,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the assignment command. Returns errs.ErrObjectNotFound for
// a missing delivery or courier, errs.ErrInvalidState when the delivery is not
// pending, and errs.ErrConflict when the courier is unavailable or already
// has an active delivery.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := cmd.CourierID().String()
	h.locks.Lock(key)
	defer h.locks.Unlock(key)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	courierRepo := uow.CourierRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	candidate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if !candidate.IsAvailable() {
		return errs.NewConflictErrorWithCause(
			"courier cannot take the delivery",
			fmt.Errorf("courier %s is %s", candidate.ID(), candidate.Availability()),
		)
	}

	active, err := deliveryRepo.GetActiveByCourier(ctx, candidate.ID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewConflictErrorWithCause(
			"courier cannot take the delivery",
			fmt.Errorf("courier %s already has %d active delivery(ies)", candidate.ID(), len(active)),
		)
	}

	if err = aggregate.AssignCourier(candidate.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
