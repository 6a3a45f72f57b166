package worker

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// CookieMergeJobArgs asks a worker to merge the cookie telemetry of a
// display context into the cached verdict of URL.
type CookieMergeJobArgs struct {
	ContextID string `json:"contextId" river:"unique"`
	URL       string `json:"url"       river:"unique"`

	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the cookie merge worker.
func (args CookieMergeJobArgs) Kind() string { return "CookieMergeJob" }

// InsertOpts allows one pending merge per context and URL. Completed jobs
// are not considered so that a later visit of the same page can be merged
// again once its verdict was re-scored.
func (args CookieMergeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
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

// BlacklistRefreshJobArgs asks a worker to refresh the blacklist from its feed.
type BlacklistRefreshJobArgs struct {
	maxAttempts int
	// uniqueJobPeriod keeps periodic enqueues of every instance from piling up.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args BlacklistRefreshJobArgs) Kind() string { return "BlacklistRefreshJob" }

func (args BlacklistRefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: args.uniqueJobPeriod,
		},
	}
}
