package monitor

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs are the arguments of a re-scan of one monitored domain.
// A domain has at most one re-scan queued at a time.
type JobArgs struct {
	// Domain is the normalized domain to re-scan. It is the unique key of the job.
	Domain string `json:"domain" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind of a domain re-scan.
func (args JobArgs) Kind() string { return "RescanJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SweepArgs are the arguments of the periodic job that queues re-scans of the
// monitored domains that are due.
type SweepArgs struct{}

// Kind returns the River job kind of the monitor sweep.
func (SweepArgs) Kind() string { return "MonitorSweepJob" }

// InsertOpts keeps a single sweep queued at a time.
func (SweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateScheduled,
			},
		},
	}
}
