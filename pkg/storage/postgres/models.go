package postgres

import (
	"encoding/json"
	"fmt"
	"phishguard/pkg/domain"
	"time"
)

const (
	blacklistTable        = "blacklist_entries"
	allowlistTable        = "allowlist_entries"
	settingsTable         = "settings"
	verdictSnapshotsTable = "verdict_snapshots"
	cookieSnapshotsTable  = "cookie_snapshots"
)

// PgVerdictSnapshot is a row of verdict_snapshots.
type PgVerdictSnapshot struct {
	ContextID string          `db:"context_id"`
	URL       string          `db:"url"`
	Verdict   json.RawMessage `db:"verdict"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (p *PgVerdictSnapshot) ToDomain() (*domain.VerdictSnapshot, error) {
	var verdict domain.Verdict
	if err := json.Unmarshal(p.Verdict, &verdict); err != nil {
		return nil, fmt.Errorf("could not unmarshal verdict: %w", err)
	}

	return &domain.VerdictSnapshot{
		ContextID: p.ContextID,
		URL:       p.URL,
		Verdict:   verdict,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

// PgCookieSnapshot is a row of cookie_snapshots.
type PgCookieSnapshot struct {
	ContextID  string          `db:"context_id"`
	URL        string          `db:"url"`
	Snapshot   json.RawMessage `db:"snapshot"`
	RecordedAt time.Time       `db:"recorded_at"`
}

func (p *PgCookieSnapshot) ToDomain() (*domain.CookieSnapshot, error) {
	var snapshot domain.CookieSnapshot
	if err := json.Unmarshal(p.Snapshot, &snapshot); err != nil {
		return nil, fmt.Errorf("could not unmarshal cookie snapshot: %w", err)
	}
	snapshot.URL = p.URL
	snapshot.RecordedAt = p.RecordedAt

	return &snapshot, nil
}
