package main

import (
	"context"
	"net/http"
	"phishguard/internal/blacklist"
	"phishguard/internal/config"
	"phishguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCommand constructs the 'refresh' subcommand that downloads the
// blacklist feed once and stores it in PostgreSQL.
func refreshCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refreshes the stored blacklist from its feed",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store, err := blacklist.NewStore(strg, cfg.Blacklist.Allowlist)
			if err != nil {
				logger.Fatal(ctx, "could not create blacklist store", zap.Error(err))
			}
			if err := store.Load(ctx); err != nil {
				logger.Fatal(ctx, "could not load blacklist", zap.Error(err))
			}

			res, err := blacklist.NewRefresher(&http.Client{}, store, strg, blacklist.NewOptions(cfg)).Refresh(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not refresh blacklist", zap.Error(err))
			}

			logger.Info(ctx, "blacklist refreshed",
				zap.Int("fetched", res.Fetched),
				zap.Int("added", res.Added),
				zap.Int("skipped", res.Skipped),
				zap.Bool("notModified", res.NotModified),
				zap.Int("size", res.Size))
		},
	}

	return cmd
}
