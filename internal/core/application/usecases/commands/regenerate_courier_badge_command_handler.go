package commands

import (
	"context"

	"deliveryhub/internal/core/domain/model/kernel"
)

// RegenerateCourierBadgeCommandHandler reissues a courier's QR badge id.
// The old badge stops resolving the moment the transaction commits.
type RegenerateCourierBadgeCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewRegenerateCourierBadgeCommandHandler creates a handler for badge reissue.
func NewRegenerateCourierBadgeCommandHandler(uowFactory CourierUoWFactory) RegenerateCourierBadgeCommandHandler {
	return RegenerateCourierBadgeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the badge command and returns the freshly issued badge id.
func (h RegenerateCourierBadgeCommandHandler) Handle(
	ctx context.Context,
	cmd RegenerateCourierBadgeCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}

	badge := aggregate.RegenerateBadge()

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return badge, nil
}
