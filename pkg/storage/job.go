package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs (delayed cookie merges, blacklist
// refreshes) next to the data they act on.
type JobStorage interface {
	// AddJob enqueues a job. When called within WithTx the job only becomes
	// visible once the transaction commits. It reports false when a unique job
	// with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
