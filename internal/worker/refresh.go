package worker

import (
	"context"
	"errors"
	"fmt"
	"phishguard/internal/detector"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const refreshSnooze = time.Minute

// BlacklistRefreshWorker refreshes the blacklist feed.
type BlacklistRefreshWorker struct {
	river.WorkerDefaults[BlacklistRefreshJobArgs]

	detector detector.Detector
}

// NewBlacklistRefreshWorker creates a worker refreshing through det.
func NewBlacklistRefreshWorker(det detector.Detector) *BlacklistRefreshWorker {
	return &BlacklistRefreshWorker{detector: det}
}

// Work runs one refresh. A rate limited feed snoozes the job, an
// unconfigured refresher cancels it.
func (w *BlacklistRefreshWorker) Work(ctx context.Context, job *river.Job[BlacklistRefreshJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	res, err := w.detector.RefreshBlacklist(ctx)
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrUnavailable):
			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			logger.Warn(ctx, "blacklist feed rate limited", zap.Error(err))

			return river.JobSnooze(refreshSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error refreshing blacklist", zap.Error(err))

		return fmt.Errorf("could not refresh blacklist: %w", err)
	}

	logger.Info(ctx, "blacklist refreshed",
		zap.Int("fetched", res.Fetched),
		zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped),
		zap.Bool("notModified", res.NotModified),
		zap.Int("size", res.Size))

	return nil
}
