package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"phishguard/pkg/storage"
	"phishguard/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func blacklisted(t *testing.T, pg *postgres.PgSQL, d string) bool {
	t.Helper()
	snapshot, err := pg.Blacklist(context.Background())
	require.NoError(t, err)

	for _, got := range snapshot.Domains {
		if got == d {
			return true
		}
	}

	return false
}

func TestPgSQL_Begin_AlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.AddBlacklistEntries(ctx, storage.SourceReport, "committed.example")
	require.NoError(t, err)
	require.False(t, blacklisted(t, pg, "committed.example"))
	require.NoError(t, tx.Commit())
	require.True(t, blacklisted(t, pg, "committed.example"))

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.AddBlacklistEntries(ctx, storage.SourceReport, "discarded.example")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.False(t, blacklisted(t, pg, "discarded.example"))
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.AddBlacklistEntries(ctx, storage.SourceFeed, "with-tx.example")

		return err
	})
	require.NoError(t, err)
	require.True(t, blacklisted(t, pg, "with-tx.example"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.AddBlacklistEntries(ctx, storage.SourceFeed, "boom.example")

		return errors.New("boom")
	})
	require.Error(t, err)
	require.False(t, blacklisted(t, pg, "boom.example"))
}
