package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob cancels Pending online orders whose requested pickup time
// passed more than the grace period ago. Cancellation goes through the
// regular status transition path, so queue compaction and event publication
// apply exactly as for a manual cancellation.
type StaleOrderJob struct {
	handler     *commands.UpdateOrderStatusCommandHandler
	orders      ports.OrderRepository
	restaurants ports.RestaurantRepository
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewStaleOrderJob creates the housekeeping job. The grace period is how
// long past its pickup time a Pending online order may linger before it is
// cancelled.
func NewStaleOrderJob(
	handler *commands.UpdateOrderStatusCommandHandler,
	orders ports.OrderRepository,
	restaurants ports.RestaurantRepository,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:     handler,
		orders:      orders,
		restaurants: restaurants,
		gracePeriod: gracePeriod,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "stale_order_job"),
	}
}

// Start begins the job, sweeping once a minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)",
		"grace_period", j.gracePeriod)
	return nil
}

// Stop stops the job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

// sweep cancels every order that outstayed the grace period. Each order is
// cancelled on behalf of its restaurant's owner; one failed order does not
// stop the sweep.
func (j *StaleOrderJob) sweep(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.gracePeriod)

	stale, err := j.orders.GetStalePendingOnline(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		if err := j.cancel(ctx, aggregate); err != nil {
			// A racing manual transition loses the order its Pending
			// status; skip it quietly.
			if errors.Is(err, order.ErrInvalidStatusTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel stale order",
				"order_id", aggregate.ID(),
				"error", err,
			)
		} else {
			j.logger.InfoContext(ctx, "Cancelled stale order",
				"order_id", aggregate.ID(),
				"requested_time", aggregate.RequestedTime(),
			)
		}
	}

	return nil
}

func (j *StaleOrderJob) cancel(ctx context.Context, aggregate *order.Order) error {
	ownerID, err := j.restaurants.GetOwnerID(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		aggregate.ID(),
		order.Cancelled,
		commands.Actor{UserID: ownerID, Role: commands.Owner},
	)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}
