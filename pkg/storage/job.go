package storage

import (
	"context"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobStorage enqueues river jobs next to the domain rows they refer to.
type JobStorage interface {
	// AddJob is atomic with any surrounding transaction. It reports false
	// when river skipped the job as a duplicate of a unique one.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// UniqueWhileLive makes a job unique by its arguments among jobs that have
// not finished yet. A completed, canceled or discarded job does not block a
// new one.
func UniqueWhileLive() river.UniqueOpts {
	return river.UniqueOpts{
		ByArgs: true,
		ByState: []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		},
	}
}
