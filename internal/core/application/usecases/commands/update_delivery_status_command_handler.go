package commands

import (
	"context"
)

// UpdateDeliveryStatusCommandHandler moves a delivery through its lifecycle.
// The transition table decides whether the move is legal; the returned effect
// decides what happens to the assigned courier. Both aggregates are updated
// in a single transaction, so a completed delivery and its courier's release
// are never observed apart.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command. Returns errs.ErrObjectNotFound
// for a missing delivery and errs.ErrInvalidState for transitions the table
// rejects, terminal statuses included.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	effect, err := aggregate.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}

	aggregate.AppendNote(cmd.Note())

	if (effect.ReleaseCourier || effect.CountCompletion) && aggregate.Courier() != nil {
		courierRepo := uow.CourierRepository()

		assigned, err := courierRepo.Get(ctx, *aggregate.Courier())
		if err != nil {
			return err
		}

		if effect.ReleaseCourier {
			assigned.Release()
		}
		if effect.CountCompletion {
			assigned.RecordCompletedDelivery()
		}

		if err = courierRepo.Update(ctx, assigned); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
