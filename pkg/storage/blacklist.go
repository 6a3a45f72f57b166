package storage

import (
	"context"
	"time"
)

// Blacklist entry sources.
const (
	SourceFeed   = "feed"
	SourceReport = "report"
	SourceLocal  = "local"
)

// BlacklistSnapshot is the persisted state of the blacklist.
type BlacklistSnapshot struct {
	Domains   []string
	Allowlist []string
	// RefreshedAt is the time of the last successful feed refresh, zero if none.
	RefreshedAt time.Time
}

// BlacklistStorage persists known-bad and known-good domains.
type BlacklistStorage interface {
	// Blacklist loads the persisted blacklist and allowlist.
	Blacklist(ctx context.Context) (*BlacklistSnapshot, error)
	// AddBlacklistEntries stores domains that are not stored yet and returns
	// how many were added.
	AddBlacklistEntries(ctx context.Context, source string, domains ...string) (int, error)
	// AddAllowlistEntries stores domains reported as false positives.
	AddAllowlistEntries(ctx context.Context, domains ...string) error
	// SetBlacklistRefreshedAt records a successful feed refresh.
	SetBlacklistRefreshedAt(ctx context.Context, at time.Time) error
}
