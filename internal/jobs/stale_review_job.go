package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StaleReviewJob reports orders that have been sitting in UnderReview
// longer than the configured threshold. It is reporting-only; a stuck
// order still needs a human to validate, cancel, or fix it.
type StaleReviewJob struct {
	handler    queries.GetOrdersByStatusQueryHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleReviewJob creates a job that flags orders stuck under review.
func NewStaleReviewJob(
	handler queries.GetOrdersByStatusQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleReviewJob {
	return &StaleReviewJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_review_job"),
	}
}

// Start begins the stale review job to run every minute.
func (j *StaleReviewJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrdersByStatusQuery(order.UnderReview)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale review job failed to build query", "error", err)
			return
		}

		rows, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale review job failed", "error", err)
			return
		}

		cutoff := time.Now().UTC().Add(-j.staleAfter)
		for _, row := range rows {
			if row.UpdatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Order is stuck under review",
					"order_id", row.ID.String(),
					"customer_order_number", row.CustomerOrderNumber,
					"idle_since", row.UpdatedAt)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale review job started (running every minute)")
	return nil
}

// Stop stops the stale review job.
func (j *StaleReviewJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale review job stopped")
}
