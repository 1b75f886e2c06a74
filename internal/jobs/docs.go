// Package jobs provides scheduled background tasks for the order review
// workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to surface orders that are not moving through the pipeline.
//
// # Available Jobs
//
// 1. StaleReviewJob - Runs every minute to report orders sitting under
// review longer than the configured threshold
// 2. PendingBacklogJob - Runs every minute to report how many ingested
// orders still wait for a reviewer to open them
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersByStatusHandler, staleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs are reporting-only. They never mutate orders, so a failed run
// is logged and the next tick simply tries again.
package jobs
