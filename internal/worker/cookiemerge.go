package worker

import (
	"context"
	"errors"
	"fmt"
	"phishguard/internal/detector"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"phishguard/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const cookieMergeTimeout = 30 * time.Second

// CookieMergeWorker runs delayed cookie merges.
type CookieMergeWorker struct {
	river.WorkerDefaults[CookieMergeJobArgs]

	detector detector.Detector
}

// NewCookieMergeWorker creates a worker merging through det.
func NewCookieMergeWorker(det detector.Detector) *CookieMergeWorker {
	return &CookieMergeWorker{detector: det}
}

func (w *CookieMergeWorker) Timeout(*river.Job[CookieMergeJobArgs]) time.Duration {
	return cookieMergeTimeout
}

// Work merges the cookie telemetry of the job's context. Missing telemetry
// is final: the job is canceled instead of retried.
func (w *CookieMergeWorker) Work(ctx context.Context, job *river.Job[CookieMergeJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("contextID", job.Args.ContextID),
		zap.String("url", job.Args.URL))

	merged, err := w.detector.MergeCookies(ctx, job.Args.ContextID, job.Args.URL)
	if err != nil {
		if errors.Is(err, serrors.ErrScriptingUnavailable) {
			logger.Debug(ctx, "no cookie telemetry, canceling merge", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error merging cookie telemetry", zap.Error(err))

		return fmt.Errorf("could not merge cookies: %w", err)
	}

	if merged != nil {
		logger.Info(ctx, "cookie telemetry merged", zap.Float64("score", merged.Score))
	}

	return nil
}

// RiverScheduler enqueues cookie merges as scheduled River jobs, so pending
// merges survive restarts and run on any instance.
type RiverScheduler struct {
	storage     storage.JobStorage
	maxAttempts int
}

// NewRiverScheduler creates a scheduler inserting jobs through strg.
func NewRiverScheduler(strg storage.JobStorage, maxAttempts int) *RiverScheduler {
	return &RiverScheduler{storage: strg, maxAttempts: maxAttempts}
}

var _ detector.Scheduler = (*RiverScheduler)(nil)

func (s *RiverScheduler) ScheduleCookieMerge(ctx context.Context, contextID string, url string, delay time.Duration) error {
	args := CookieMergeJobArgs{ContextID: contextID, URL: url, maxAttempts: s.maxAttempts}
	opts := args.InsertOpts()
	opts.ScheduledAt = time.Now().Add(delay)

	inserted, err := s.storage.AddJob(ctx, args, &opts)
	if err != nil {
		return fmt.Errorf("could not enqueue cookie merge: %w", err)
	}
	if !inserted {
		logger.Debug(ctx, "cookie merge already pending")
	}

	return nil
}
