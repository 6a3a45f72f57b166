package postgres_test

import (
	"context"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Blacklist(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	empty, err := pg.Blacklist(ctx)
	require.NoError(t, err)
	require.Empty(t, empty.Domains)
	require.True(t, empty.RefreshedAt.IsZero())

	added, err := pg.AddBlacklistEntries(ctx, storage.SourceFeed, "b.example", "a.example")
	require.NoError(t, err)
	require.Equal(t, 2, added)

	added, err = pg.AddBlacklistEntries(ctx, storage.SourceReport, "a.example", "c.example")
	require.NoError(t, err)
	require.Equal(t, 1, added)

	require.NoError(t, pg.AddAllowlistEntries(ctx, "good.example", "good.example"))
	at := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, pg.SetBlacklistRefreshedAt(ctx, at))
	require.NoError(t, pg.SetBlacklistRefreshedAt(ctx, at.Add(time.Hour)))

	snapshot, err := pg.Blacklist(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.example", "b.example", "c.example"}, snapshot.Domains)
	require.Equal(t, []string{"good.example"}, snapshot.Allowlist)
	require.True(t, at.Add(time.Hour).Equal(snapshot.RefreshedAt))
}

func TestPgSQL_AddBlacklistEntries_Batches(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	domains := make([]string, 0, 2500)
	for i := range 2500 {
		domains = append(domains, fmt.Sprintf("d%d.example", i))
	}

	added, err := pg.AddBlacklistEntries(ctx, storage.SourceFeed, domains...)
	require.NoError(t, err)
	require.Equal(t, 2500, added)

	snapshot, err := pg.Blacklist(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.Domains, 2500)
}

func TestPgSQL_VerdictSnapshots(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	got, err := pg.VerdictSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Nil(t, got)

	cookieScore := 65.0
	verdict := domain.Verdict{
		IsPhishing:     true,
		Score:          95,
		Reason:         "Suspicious URL pattern",
		Classification: domain.ClassificationPhishing,
		Source:         domain.SourceScoring,
		Details:        domain.ScoreBreakdown{HeuristicScore: 50, CookieScore: &cookieScore},
	}
	require.NoError(t, pg.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{
		ContextID: "tab-1",
		URL:       "https://a.example/",
		Verdict:   verdict,
	}))

	got, err = pg.VerdictSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Equal(t, "https://a.example/", got.URL)
	require.Equal(t, verdict.Score, got.Verdict.Score)
	require.Equal(t, cookieScore, *got.Verdict.Details.CookieScore)
	require.False(t, got.UpdatedAt.IsZero())

	// upsert replaces
	require.NoError(t, pg.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{
		ContextID: "tab-1",
		URL:       "https://b.example/",
	}))

	_, err = pg.LockVerdictSnapshot(ctx, "tab-1")
	require.ErrorIs(t, err, storage.ErrNotInTx)

	err = pg.WithTx(ctx, func(tx storage.AllStorage) error {
		locked, err := tx.LockVerdictSnapshot(ctx, "tab-1")
		require.NoError(t, err)
		require.Equal(t, "https://b.example/", locked.URL)

		return nil
	})
	require.NoError(t, err)
}

func TestPgSQL_CookieSnapshots(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	got, err := pg.CookieSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Nil(t, got)

	recorded := time.Now().UTC().Truncate(time.Second)
	snapshot := domain.CookieSnapshot{
		URL:             "https://a.example/",
		CookieCount:     10,
		SecureCookies:   1,
		HTTPOnlyCookies: 1,
		TrackingCookies: 4,
		RecordedAt:      recorded,
	}
	require.NoError(t, pg.SaveCookieSnapshot(ctx, "tab-1", snapshot))

	got, err = pg.CookieSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Equal(t, 10, got.CookieCount)
	require.Equal(t, 4, got.TrackingCookies)
	require.True(t, recorded.Equal(got.RecordedAt))
}

func TestPgSQL_Preferences(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	client := domain.ClientID(uuid.New())

	prefs, err := pg.Preferences(ctx, client)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultPreferences(), prefs)

	saved := domain.Preferences{RealTimeProtection: true, AutoBlock: false, WarnMediumRisk: false}
	require.NoError(t, pg.SavePreferences(ctx, client, saved))

	prefs, err = pg.Preferences(ctx, client)
	require.NoError(t, err)
	require.Equal(t, saved, prefs)
}
