// Package worker runs the background jobs: breach checks, re-scans of
// monitored domains and the periodic sweep that queues those re-scans.
package worker

import (
	"context"
	"exposure/internal/breach"
	"exposure/internal/monitor"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers bounds how many jobs run concurrently.
	MaxWorkers int
	// SweepInterval is how often the monitor sweep runs.
	SweepInterval time.Duration
}

// Start registers the workers and starts a River client on dbPool.
func Start(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	runner breach.Runner,
	mon monitor.Monitor,
	options Options,
) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewBreachCheckWorker(runner))
	river.AddWorker(workers, NewRescanWorker(mon))
	river.AddWorker(workers, NewMonitorSweepWorker(mon))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(options.SweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return monitor.SweepArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
