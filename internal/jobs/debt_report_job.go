package jobs

import (
	"context"
	"log/slog"

	"fleetledger/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DebtReportJob logs every driver's outstanding position once a day.
// The job is read-only: it derives the fleet-wide debt summary and writes
// it to the log for the back office.
type DebtReportJob struct {
	handler queries.GetDebtSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDebtReportJob creates the daily debt report job.
// Uses GetDebtSummaryQueryHandler to derive per-driver outstanding totals.
func NewDebtReportJob(handler queries.GetDebtSummaryQueryHandler, logger *slog.Logger) *DebtReportJob {
	return &DebtReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "debt_report_job"),
	}
}

// Start schedules the debt report to run every day at 06:00.
func (j *DebtReportJob) Start() error {
	_, err := j.cron.AddFunc("0 6 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Debt report job started (running daily at 06:00)")
	return nil
}

// Stop stops the debt report job.
func (j *DebtReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Debt report job stopped")
}

func (j *DebtReportJob) run() {
	ctx := context.Background()

	items, err := j.handler.Handle(ctx, queries.NewGetDebtSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Debt report job failed", "error", err)
		return
	}

	if len(items) == 0 {
		j.logger.InfoContext(ctx, "Debt report: no outstanding debt")
		return
	}

	for _, item := range items {
		j.logger.InfoContext(ctx, "Outstanding debt",
			"driverId", item.DriverID.String(),
			"driverName", item.DriverName,
			"ordersCount", item.OrdersCount,
			"totalFees", item.TotalFees.String(),
			"companyShare", item.CompanyShare.String(),
			"driverShare", item.DriverShare.String(),
		)
	}
}
