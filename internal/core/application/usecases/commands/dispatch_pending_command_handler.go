package commands

import (
	"context"
	"errors"

	"deliveryhub/internal/core/domain/model/courier"
	"deliveryhub/internal/core/domain/services"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/keylock"
)

var (
	ErrNoPendingDeliveries = errors.New("no pending deliveries found")
	ErrNoAvailableCouriers = errors.New("no available couriers found")
)

// DispatchPendingCommandHandler implements the auto-dispatch path: oldest
// pending delivery, best available courier without an active delivery, same
// assignment semantics as the explicit command. The job treats the two "no
// work to do" sentinels as a quiet pass.
//
// The check-then-assign sequence on the winning courier runs under the same
// keyed mutex the explicit assign handler uses, so a dispatch racing an
// explicit assignment for that courier cannot both pass the active-delivery
// check.
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyedMutex
}

// NewDispatchPendingCommandHandler creates a handler for auto-dispatch. The
// lock registry must be the one the assign handler serializes on.
func NewDispatchPendingCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.KeyedMutex,
) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the dispatch command. Returns ErrNoPendingDeliveries when
// nothing is waiting and ErrNoAvailableCouriers when every available courier
// is already occupied.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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
	courierRepo := uow.CourierRepository()

	pending, err := deliveryRepo.GetOldestPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingDeliveries
	}
	if err != nil {
		return err
	}

	available, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	candidates := make([]*courier.Courier, 0, len(available))
	for _, c := range available {
		active, err := deliveryRepo.GetActiveByCourier(ctx, c.ID())
		if err != nil {
			return err
		}
		if len(active) == 0 {
			candidates = append(candidates, c)
		}
	}

	best, err := services.NewDispatcher().SelectBest(candidates)
	if errors.Is(err, services.ErrNoSuitableCourier) {
		return ErrNoAvailableCouriers
	}
	if err != nil {
		return err
	}

	// The candidate scan above ran without the winner's lock, so an explicit
	// assignment may have slipped in. Re-check under the lock before
	// committing to the winner.
	key := best.ID().String()
	h.locks.Lock(key)
	defer h.locks.Unlock(key)

	active, err := deliveryRepo.GetActiveByCourier(ctx, best.ID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return ErrNoAvailableCouriers
	}

	// The winning courier stays Available until a terminal status releases
	// it, so only the delivery side is written back.
	if err = pending.AssignCourier(best.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
