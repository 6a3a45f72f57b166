package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"phishguard/internal/api"
	"phishguard/internal/blacklist"
	"phishguard/internal/config"
	"phishguard/internal/detector"
	"phishguard/internal/worker"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/storage"
	"phishguard/pkg/storage/memory"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	storagePostgres = "postgres"
	storageMemory   = "memory"
)

func setupServer(ctx context.Context, cfg *config.Config, det detector.Detector, mp metric.MeterProvider) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Detector:      det,
		MeterProvider: mp,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorkers starts River on pool. Without a pool, cookie merges run on
// in-process timers and the blacklist is refreshed by a ticker.
func setupWorkers(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, det detector.Detector,
	refresher *blacklist.Refresher,
) func(ctx context.Context) {
	if pool == nil {
		if cfg.Blacklist.RefreshInterval > 0 {
			go refresher.Run(ctx)
		}

		return func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, pool, det, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func setupWatcher(ctx context.Context, cfg *config.Config, store *blacklist.Store) {
	if cfg.Blacklist.LocalList == "" {
		return
	}

	w := blacklist.NewWatcher(cfg.Blacklist.LocalList, store)
	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Error(ctx, "local list watcher stopped", zap.Error(err))
		}
	}()
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			backend, _ := cmd.Flags().GetString("storage")

			var (
				strg storage.Storage
				pool *pgxpool.Pool
			)
			switch backend {
			case storagePostgres:
				pgsql, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg, pool = pgsql, pgsql.Pool
			case storageMemory:
				strg = memory.New()
			default:
				logger.Fatal(ctx, "unknown storage backend", zap.String("storage", backend))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			deps, err := newDetectorDeps(ctx, cfg, strg)
			if err != nil {
				logger.Fatal(ctx, "could not create detector dependencies", zap.Error(err))
			}
			deps.MeterProvider = mp
			if pool != nil {
				deps.Scheduler = worker.NewRiverScheduler(strg, cfg.Worker.CookieMergeAttempts)
			}
			det, err := detector.New(deps, detector.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create detector", zap.Error(err))
			}

			stopWorkers := setupWorkers(ctx, cfg, pool, det, deps.Refresher)
			setupWatcher(ctx, cfg, deps.Blacklist)
			stopWebserver := setupServer(ctx, cfg, det, mp)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	cmd.Flags().String("storage", storagePostgres, "Storage backend (postgres or memory)")

	return cmd
}
