package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the domain data,
// so a job inserted inside WithTx only becomes visible if the transaction
// commits.
type JobStorage interface {
	// AddJob enqueues a job. The returned bool is false when River skipped the
	// insert because an equivalent unique job already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
