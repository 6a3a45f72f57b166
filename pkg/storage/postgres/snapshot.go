package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// SaveVerdictSnapshot upserts the snapshot of its context.
func (p *PgSQL) SaveVerdictSnapshot(ctx context.Context, snapshot domain.VerdictSnapshot) error {
	b, err := json.Marshal(snapshot.Verdict)
	if err != nil {
		return fmt.Errorf("could not marshal verdict: %w", err)
	}

	if _, err := p.Builder.Insert(verdictSnapshotsTable).
		Rows(goqu.Record{
			"context_id": snapshot.ContextID,
			"url":        snapshot.URL,
			"verdict":    b,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		OnConflict(goqu.DoUpdate("context_id", goqu.Record{
			"url":        goqu.L("EXCLUDED.url"),
			"verdict":    goqu.L("EXCLUDED.verdict"),
			"updated_at": goqu.L("EXCLUDED.updated_at"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store verdict snapshot into pg: %w", err)
	}

	return nil
}

// VerdictSnapshot returns the snapshot of contextID or nil.
func (p *PgSQL) VerdictSnapshot(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error) {
	return p.verdictSnapshot(ctx, contextID, false)
}

// LockVerdictSnapshot selects the snapshot of contextID FOR UPDATE.
func (p *PgSQL) LockVerdictSnapshot(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error) {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return nil, storage.ErrNotInTx
	}

	return p.verdictSnapshot(ctx, contextID, true)
}

func (p *PgSQL) verdictSnapshot(ctx context.Context, contextID string, lock bool) (*domain.VerdictSnapshot, error) {
	query := p.Builder.From(verdictSnapshotsTable).Where(goqu.I("context_id").Eq(contextID))
	if lock {
		query = query.ForUpdate(exp.Wait)
	}

	var row PgVerdictSnapshot
	found, err := query.ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get verdict snapshot from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

// SaveCookieSnapshot upserts the cookie snapshot of contextID.
func (p *PgSQL) SaveCookieSnapshot(ctx context.Context, contextID string, snapshot domain.CookieSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal cookie snapshot: %w", err)
	}

	if _, err := p.Builder.Insert(cookieSnapshotsTable).
		Rows(goqu.Record{
			"context_id":  contextID,
			"url":         snapshot.URL,
			"snapshot":    b,
			"recorded_at": snapshot.RecordedAt,
		}).
		OnConflict(goqu.DoUpdate("context_id", goqu.Record{
			"url":         goqu.L("EXCLUDED.url"),
			"snapshot":    goqu.L("EXCLUDED.snapshot"),
			"recorded_at": goqu.L("EXCLUDED.recorded_at"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store cookie snapshot into pg: %w", err)
	}

	return nil
}

// CookieSnapshot returns the cookie snapshot of contextID or nil.
func (p *PgSQL) CookieSnapshot(ctx context.Context, contextID string) (*domain.CookieSnapshot, error) {
	var row PgCookieSnapshot
	found, err := p.Builder.From(cookieSnapshotsTable).
		Where(goqu.I("context_id").Eq(contextID)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get cookie snapshot from pg: %w", err)
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain()
}

func preferencesKey(clientID domain.ClientID) string {
	return "preferences:" + clientID.String()
}

// Preferences returns the saved preferences of clientID or the defaults.
func (p *PgSQL) Preferences(ctx context.Context, clientID domain.ClientID) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	if _, err := p.getSetting(ctx, preferencesKey(clientID), &prefs); err != nil {
		return domain.Preferences{}, err
	}

	return prefs, nil
}

// SavePreferences stores the preferences of clientID.
func (p *PgSQL) SavePreferences(ctx context.Context, clientID domain.ClientID, prefs domain.Preferences) error {
	return p.putSetting(ctx, preferencesKey(clientID), prefs)
}
