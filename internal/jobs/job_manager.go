package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleReviewJob    *StaleReviewJob
	pendingBacklogJob *PendingBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the worklist query handler as a dependency to wire up job
// execution.
func NewJobManager(
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleReviewJob:    NewStaleReviewJob(getOrdersByStatusHandler, staleAfter, logger),
		pendingBacklogJob: NewPendingBacklogJob(getOrdersByStatusHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleReviewJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale review job: %w", err)
	}

	if err := jm.pendingBacklogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleReviewJob.Stop()
		return fmt.Errorf("failed to start pending backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBacklogJob.Stop()
	jm.staleReviewJob.Stop()
}
