package jobs

import (
	"context"
	"errors"
	"log/slog"

	"deliveryhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchSchedule fires every ten seconds. Dispatching is idempotent per
// pending delivery, so overlap with manual assignment is harmless: whoever
// loses the per-delivery race sees a non-pending delivery and moves on.
const dispatchSchedule = "*/10 * * * * *"

// DeliveryDispatchJob periodically matches the oldest pending delivery with
// the best available courier.
type DeliveryDispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryDispatchJob creates a new auto-dispatch job.
func NewDeliveryDispatchJob(
	handler commands.DispatchPendingCommandHandler,
	logger *slog.Logger,
) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_dispatch_job"),
	}
}

// Start begins the dispatch job on its schedule.
func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc(dispatchSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and a fully occupied fleet are normal states.
			if !errors.Is(err, commands.ErrNoPendingDeliveries) &&
				!errors.Is(err, commands.ErrNoAvailableCouriers) {
				j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started")
	return nil
}

// Stop stops the dispatch job.
func (j *DeliveryDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}
