// Package worker runs the background jobs of the detector on River: delayed
// cookie merges and periodic blacklist refreshes.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"phishguard/internal/config"
	"phishguard/internal/detector"
	"phishguard/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job queue.
type Options struct {
	MaxWorkers          int
	CookieMergeAttempts int
	RefreshAttempts     int
	// RefreshInterval is the period of blacklist refresh jobs. Zero disables them.
	RefreshInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:          cfg.Worker.MaxWorkers,
		CookieMergeAttempts: cfg.Worker.CookieMergeAttempts,
		RefreshAttempts:     cfg.Worker.RefreshAttempts,
		RefreshInterval:     cfg.Blacklist.RefreshInterval,
	}
}

// PeriodicJobs returns the jobs River enqueues on a schedule.
func PeriodicJobs(options Options) []*river.PeriodicJob {
	if options.RefreshInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(options.RefreshInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				args := BlacklistRefreshJobArgs{
					maxAttempts:     options.RefreshAttempts,
					uniqueJobPeriod: options.RefreshInterval,
				}
				opts := args.InsertOpts()

				return args, &opts
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start registers the workers and starts processing jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, det detector.Detector, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewCookieMergeWorker(det))
	river.AddWorker(workers, NewBlacklistRefreshWorker(det))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: PeriodicJobs(options),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
