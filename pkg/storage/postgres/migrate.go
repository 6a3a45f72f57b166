package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"phishguard"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationsDir is the directory of the embedded goose migrations.
const MigrationsDir = "migrations"

// MigrationStatus reports the schema versions after Migrate.
type MigrationStatus struct {
	SchemaVersion int64
	RiverVersion  int
}

// Migrate applies the embedded schema migrations and then the River queue
// migrations up to their latest versions. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) (MigrationStatus, error) {
	var status MigrationStatus

	goose.SetBaseFS(phishguard.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return status, fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}
	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return status, fmt.Errorf("could not migrate schema: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return status, fmt.Errorf("could not read schema version: %w", err)
	}
	status.SchemaVersion = version

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return status, fmt.Errorf("could not create river queue migrator: %w", err)
	}
	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return status, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest > current {
		if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
			TargetVersion: latest,
		}); err != nil {
			return status, fmt.Errorf("could not migrate river queue: %w", err)
		}
	}
	status.RiverVersion = latest

	return status, nil
}
