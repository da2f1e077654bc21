package worker

import (
	"context"
	"errors"
	"exposure/internal/monitor"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// rescanTimeout covers a full wordlist discovery of one domain.
const rescanTimeout = 30 * time.Minute

// RescanWorker re-scans one monitored domain.
type RescanWorker struct {
	river.WorkerDefaults[monitor.JobArgs]

	monitor monitor.Monitor
}

// NewRescanWorker constructs a RescanWorker.
func NewRescanWorker(mon monitor.Monitor) *RescanWorker {
	return &RescanWorker{monitor: mon}
}

func (w *RescanWorker) Timeout(*river.Job[monitor.JobArgs]) time.Duration {
	return rescanTimeout
}

func (w *RescanWorker) Work(ctx context.Context, job *river.Job[monitor.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	result, err := w.monitor.Rescan(ctx, job.Args.Domain)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in re-scanning domain", zap.Error(err))

		return fmt.Errorf("could not re-scan domain: %w", err)
	}

	logger.Info(ctx, "re-scan job completed", zap.Bool("alerted", result.Alerted))

	return nil
}

// MonitorSweepWorker queues re-scans of the monitored domains that are due.
type MonitorSweepWorker struct {
	river.WorkerDefaults[monitor.SweepArgs]

	monitor monitor.Monitor
}

// NewMonitorSweepWorker constructs a MonitorSweepWorker.
func NewMonitorSweepWorker(mon monitor.Monitor) *MonitorSweepWorker {
	return &MonitorSweepWorker{monitor: mon}
}

func (w *MonitorSweepWorker) Work(ctx context.Context, job *river.Job[monitor.SweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if _, err := w.monitor.Sweep(ctx); err != nil {
		logger.Error(ctx, "error in monitor sweep", zap.Error(err))

		return fmt.Errorf("could not sweep monitored domains: %w", err)
	}

	return nil
}
