package commands

import (
	"context"

	"deliveryhub/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// creation. Resolves the originating store and destination customer, then
// persists the new delivery in PendingPickup status.
type CreateDeliveryCommandHandler struct {
	uowFactory CreateDeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory CreateDeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command. The store and customer
// lookups surface errs.ErrObjectNotFound for dangling references before any
// write happens.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	if _, err := uow.StoreRepository().Get(ctx, cmd.StoreID()); err != nil {
		return err
	}

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.StoreID(), cmd.CustomerID(),
		cmd.Origin(), cmd.Destination(), cmd.ProductDescription(),
		cmd.Fee(), cmd.Tip(),
		cmd.EstimatedMinutes(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
