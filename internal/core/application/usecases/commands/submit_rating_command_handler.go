package commands

import (
	"context"
)

// SubmitRatingCommandHandler folds a new score into a courier's aggregate
// rating. Scores outside [1.0, 5.0] are rejected by the aggregate with an
// out-of-range error and leave rating and count untouched.
type SubmitRatingCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory CourierUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	courierRepo := uow.CourierRepository()

	rated, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = rated.SubmitRating(cmd.Score()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, rated); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
