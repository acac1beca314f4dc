// Package jobs provides scheduled background tasks for the ledger system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the settlement service.
//
// # Available Jobs
//
// 1. DebtReportJob - Runs daily at 06:00 to log every driver's outstanding debt position
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(debtSummaryHandler, logger)
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
// - The report job is read-only; failures are logged and the next run retries
// - Failed job starts will stop any already running jobs
package jobs
