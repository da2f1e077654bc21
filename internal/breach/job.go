package breach

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a breach check job submitted to River.
// A user has at most one breach check queued at a time.
type JobArgs struct {
	// UserID is the user to check. It is the unique key of the job.
	UserID string `json:"userId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod is the lookback window in which a job for the same user
	// is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the breach worker.
func (args JobArgs) Kind() string { return "BreachCheckJob" }

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
