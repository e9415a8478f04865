// Package jobs provides scheduled background tasks for the order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the order lifecycle requires.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel Pending online orders whose
// requested pickup time passed more than the configured grace period ago.
// Cancellation reuses the regular status transition path, so queue
// compaction and event publication behave exactly as for a manual
// cancellation.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(updateOrderStatusHandler, orderRepo, restaurantRepo, gracePeriod, logger)
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
// - The sweep skips orders that lost their Pending status to a racing
// manual transition; those are expected business scenarios.
// - All other per-order failures are logged and the sweep continues.
// - Failed job starts are reported to the caller.
package jobs
