package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"phishguard/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	refreshedAtKey = "blacklist.refreshed_at"
	// insertBatchSize keeps feed inserts below the bind parameter limit.
	insertBatchSize = 1000
)

// Blacklist loads every stored blacklist and allowlist entry.
func (p *PgSQL) Blacklist(ctx context.Context) (*storage.BlacklistSnapshot, error) {
	var out storage.BlacklistSnapshot
	if err := p.Builder.From(blacklistTable).
		Select("domain").
		Order(goqu.I("domain").Asc()).
		ScanValsContext(ctx, &out.Domains); err != nil {
		return nil, fmt.Errorf("could not get blacklist entries from pg: %w", err)
	}

	if err := p.Builder.From(allowlistTable).
		Select("domain").
		Order(goqu.I("domain").Asc()).
		ScanValsContext(ctx, &out.Allowlist); err != nil {
		return nil, fmt.Errorf("could not get allowlist entries from pg: %w", err)
	}

	if _, err := p.getSetting(ctx, refreshedAtKey, &out.RefreshedAt); err != nil {
		return nil, err
	}

	return &out, nil
}

// AddBlacklistEntries inserts domains in batches, skipping the ones already stored.
func (p *PgSQL) AddBlacklistEntries(ctx context.Context, source string, domains ...string) (int, error) {
	added := 0
	for start := 0; start < len(domains); start += insertBatchSize {
		batch := domains[start:min(start+insertBatchSize, len(domains))]
		rows := make([]any, 0, len(batch))
		for _, d := range batch {
			rows = append(rows, goqu.Record{"domain": d, "source": source})
		}

		res, err := p.Builder.Insert(blacklistTable).
			Rows(rows...).
			OnConflict(goqu.DoNothing()).
			Executor().ExecContext(ctx)
		if err != nil {
			return added, fmt.Errorf("could not store blacklist entries into pg: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("could not count stored blacklist entries: %w", err)
		}
		added += int(n)
	}

	return added, nil
}

// AddAllowlistEntries inserts allowlisted domains.
func (p *PgSQL) AddAllowlistEntries(ctx context.Context, domains ...string) error {
	if len(domains) == 0 {
		return nil
	}

	rows := make([]any, 0, len(domains))
	for _, d := range domains {
		rows = append(rows, goqu.Record{"domain": d})
	}
	if _, err := p.Builder.Insert(allowlistTable).
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store allowlist entries into pg: %w", err)
	}

	return nil
}

// SetBlacklistRefreshedAt stores the time of the last feed refresh.
func (p *PgSQL) SetBlacklistRefreshedAt(ctx context.Context, at time.Time) error {
	return p.putSetting(ctx, refreshedAtKey, at)
}

func (p *PgSQL) putSetting(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not marshal setting %s: %w", key, err)
	}

	if _, err := p.Builder.Insert(settingsTable).
		Rows(goqu.Record{"key": key, "value": b}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.L("EXCLUDED.value"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store setting %s into pg: %w", key, err)
	}

	return nil
}

// getSetting unmarshals the value of key into dst and reports whether it exists.
func (p *PgSQL) getSetting(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	found, err := p.Builder.From(settingsTable).
		Select("value").
		Where(goqu.I("key").Eq(key)).
		ScanValContext(ctx, &raw)
	if err != nil {
		return false, fmt.Errorf("could not get setting %s from pg: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("could not unmarshal setting %s: %w", key, err)
	}

	return true, nil
}
