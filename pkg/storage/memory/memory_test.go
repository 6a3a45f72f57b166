package memory_test

import (
	"context"
	"errors"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"phishguard/pkg/storage/memory"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMemory_Blacklist(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	added, err := m.AddBlacklistEntries(ctx, storage.SourceFeed, "b.example", "a.example", "a.example")
	require.NoError(t, err)
	require.Equal(t, 2, added)

	added, err = m.AddBlacklistEntries(ctx, storage.SourceReport, "a.example", "c.example")
	require.NoError(t, err)
	require.Equal(t, 1, added)

	require.NoError(t, m.AddAllowlistEntries(ctx, "good.example"))
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, m.SetBlacklistRefreshedAt(ctx, at))

	snapshot, err := m.Blacklist(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"a.example", "b.example", "c.example"}, snapshot.Domains)
	require.Equal(t, []string{"good.example"}, snapshot.Allowlist)
	require.Equal(t, at, snapshot.RefreshedAt)
}

func TestMemory_Snapshots(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	got, err := m.VerdictSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, m.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{
		ContextID: "tab-1",
		URL:       "https://example.com/",
		Verdict:   domain.Verdict{Score: 12},
	}))
	got, err = m.VerdictSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/", got.URL)

	_, err = m.LockVerdictSnapshot(ctx, "tab-1")
	require.ErrorIs(t, err, storage.ErrNotInTx)

	cookies, err := m.CookieSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Nil(t, cookies)

	require.NoError(t, m.SaveCookieSnapshot(ctx, "tab-1", domain.CookieSnapshot{CookieCount: 3}))
	cookies, err = m.CookieSnapshot(ctx, "tab-1")
	require.NoError(t, err)
	require.Equal(t, 3, cookies.CookieCount)
}

func TestMemory_Preferences(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	client := domain.ClientID(uuid.New())

	prefs, err := m.Preferences(ctx, client)
	require.NoError(t, err)
	require.Equal(t, domain.DefaultPreferences(), prefs)

	saved := domain.Preferences{RealTimeProtection: true}
	require.NoError(t, m.SavePreferences(ctx, client, saved))
	prefs, err = m.Preferences(ctx, client)
	require.NoError(t, err)
	require.Equal(t, saved, prefs)

	other, err := m.Preferences(ctx, domain.ClientID(uuid.New()))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultPreferences(), other)
}

func TestMemory_WithTx(t *testing.T) {
	ctx := context.Background()
	m := memory.New()

	t.Run("commit", func(t *testing.T) {
		err := m.WithTx(ctx, func(tx storage.AllStorage) error {
			_, err := tx.AddBlacklistEntries(ctx, storage.SourceFeed, "commit.example")

			return err
		})
		require.NoError(t, err)

		snapshot, err := m.Blacklist(ctx)
		require.NoError(t, err)
		require.Contains(t, snapshot.Domains, "commit.example")
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := m.WithTx(ctx, func(tx storage.AllStorage) error {
			_, err := tx.AddBlacklistEntries(ctx, storage.SourceFeed, "rollback.example")
			require.NoError(t, err)

			return boom
		})
		require.ErrorIs(t, err, boom)

		snapshot, err := m.Blacklist(ctx)
		require.NoError(t, err)
		require.NotContains(t, snapshot.Domains, "rollback.example")
	})

	t.Run("nested", func(t *testing.T) {
		tx, err := m.Begin(ctx)
		require.NoError(t, err)
		_, err = tx.(*memory.Memory).Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
		require.NoError(t, tx.Rollback())
		require.Error(t, tx.Commit())
	})

	t.Run("outside tx", func(t *testing.T) {
		require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)
	})

	t.Run("serialized", func(t *testing.T) {
		require.NoError(t, m.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{ContextID: "tab"}))

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := m.WithTx(ctx, func(tx storage.AllStorage) error {
					s, err := tx.LockVerdictSnapshot(ctx, "tab")
					if err != nil {
						return err
					}
					s.Verdict.Score++

					return tx.SaveVerdictSnapshot(ctx, *s)
				})
				require.NoError(t, err)
			}()
		}
		wg.Wait()

		s, err := m.VerdictSnapshot(ctx, "tab")
		require.NoError(t, err)
		require.InDelta(t, 20, s.Verdict.Score, 1e-9)
	})

	t.Run("locked snapshot blocks writes", func(t *testing.T) {
		require.NoError(t, m.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{ContextID: "locked", URL: "https://a/"}))

		saved := make(chan error, 1)
		err := m.WithTx(ctx, func(tx storage.AllStorage) error {
			s, err := tx.LockVerdictSnapshot(ctx, "locked")
			if err != nil {
				return err
			}

			go func() {
				saved <- m.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{ContextID: "locked", URL: "https://b/"})
			}()
			select {
			case <-saved:
				return errors.New("snapshot written while locked")
			case <-time.After(50 * time.Millisecond):
			}

			return tx.SaveVerdictSnapshot(ctx, *s)
		})
		require.NoError(t, err)
		require.NoError(t, <-saved)

		s, err := m.VerdictSnapshot(ctx, "locked")
		require.NoError(t, err)
		require.Equal(t, "https://b/", s.URL)
	})

	t.Run("jobs unsupported", func(t *testing.T) {
		_, err := m.AddJob(ctx, nil, nil)
		require.ErrorIs(t, err, storage.ErrJobsUnsupported)
	})
}
