package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eisen_qms/internal/usecase"
)

const StatusRefreshJobName = "status_refresh"

// StatusRefresher rewrites stored week, invoice, payment and project statuses
// that drifted since the last run.
type StatusRefresher interface {
	Refresh(ctx context.Context) (usecase.RefreshReport, error)
}

type StatusRefreshJob struct {
	refresher StatusRefresher
	logger    *zap.Logger
	timeout   time.Duration
}

func NewStatusRefreshJob(refresher StatusRefresher, logger *zap.Logger, timeout time.Duration) *StatusRefreshJob {
	return &StatusRefreshJob{refresher: refresher, logger: logger.Named(StatusRefreshJobName), timeout: timeout}
}

// Run is invoked by the scheduler. Failures are logged and retried on the next tick.
func (j *StatusRefreshJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	report, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.Error("status refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}
	j.logger.Info("status refresh completed",
		zap.Int("weeks", report.Weeks),
		zap.Int("invoices", report.Invoices),
		zap.Int("payments", report.Payments),
		zap.Int("projects", report.Projects),
		zap.Duration("duration", time.Since(start)))
}

// RegisterStatusRefreshJob adds the refresh to scheduler. With runAtStartup the
// first refresh runs right away in the background so stored statuses catch up
// after downtime.
func RegisterStatusRefreshJob(scheduler *Scheduler, refresher StatusRefresher, logger *zap.Logger, cronExpr string, timeout time.Duration, runAtStartup bool) error {
	job := NewStatusRefreshJob(refresher, logger, timeout)
	if err := scheduler.AddJob(StatusRefreshJobName, cronExpr, job.Run); err != nil {
		return err
	}
	if runAtStartup {
		go job.Run()
	}
	return nil
}
