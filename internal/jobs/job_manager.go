package jobs

import (
	"fmt"
	"log/slog"

	"fleetledger/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	debtReportJob *DebtReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	debtSummaryHandler queries.GetDebtSummaryQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		debtReportJob: NewDebtReportJob(debtSummaryHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.debtReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start debt report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.debtReportJob.Stop()
}
