package worker

import (
	"context"
	"errors"
	"exposure/internal/breach"
	"exposure/pkg/breachdb"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// breachCheckTimeout leaves room for the paced detail fetches of accounts
// with many breaches.
const breachCheckTimeout = 15 * time.Minute

// BreachCheckWorker runs queued breach checks. A rate-limited check is
// snoozed for the back-off the breach database asked for; a check for a user
// that no longer exists is cancelled.
type BreachCheckWorker struct {
	river.WorkerDefaults[breach.JobArgs]

	runner breach.Runner
}

// NewBreachCheckWorker constructs a BreachCheckWorker.
func NewBreachCheckWorker(runner breach.Runner) *BreachCheckWorker {
	return &BreachCheckWorker{runner: runner}
}

func (w *BreachCheckWorker) Timeout(*river.Job[breach.JobArgs]) time.Duration {
	return breachCheckTimeout
}

func (w *BreachCheckWorker) Work(ctx context.Context, job *river.Job[breach.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("userID", job.Args.UserID))

	userID, err := breach.ParseUserID(job.Args.UserID)
	if err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	report, err := w.runner.RunBreachCheck(ctx, userID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}
		if errors.Is(err, serrors.ErrRateLimited) {
			after := breachdb.MinRetryAfter
			var retry *breachdb.RetryAfterError
			if errors.As(err, &retry) && retry.After > after {
				after = retry.After
			}
			logger.Warn(ctx, "breach database rate limited, snoozing", zap.Duration("after", after))

			return river.JobSnooze(after) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in breach check", zap.Error(err))

		return fmt.Errorf("could not run breach check: %w", err)
	}

	logger.Info(ctx, "breach check job completed", zap.Int("securityScore", report.SecurityScore))

	return nil
}
