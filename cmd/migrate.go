package main

import (
	"context"
	"database/sql"
	"phishguard/internal/config"
	"phishguard/pkg/logger"
	"phishguard/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// and River queue migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			status, err := postgres.Migrate(ctx, strg.DB.(*sql.DB))
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			logger.Info(ctx, "database migrated",
				zap.Int64("schemaVersion", status.SchemaVersion),
				zap.Int("riverVersion", status.RiverVersion))
		},
	}

	return cmd
}
