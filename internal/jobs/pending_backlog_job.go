package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingBacklogJob reports how many ingested orders still wait for a
// reviewer to open them. The count gives operators an early signal that
// the review queue is falling behind intake.
type PendingBacklogJob struct {
	handler queries.GetOrdersByStatusQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingBacklogJob creates a job that reports the pending backlog.
func NewPendingBacklogJob(
	handler queries.GetOrdersByStatusQueryHandler,
	logger *slog.Logger,
) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the pending backlog job to run every minute.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog job failed to build query", "error", err)
			return
		}

		rows, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending backlog job failed", "error", err)
			return
		}

		if len(rows) == 0 {
			return
		}

		j.logger.InfoContext(ctx, "Orders awaiting first review",
			"count", len(rows),
			"oldest_order", rows[0].CustomerOrderNumber)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the pending backlog job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}
