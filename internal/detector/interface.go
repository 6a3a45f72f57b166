// Package detector orchestrates URL checks: cache lookup, list checks,
// concurrent scoring, aggregation, and the delayed cookie merge. It also
// delivers verdict events to collaborators rendering them.
package detector

import (
	"context"
	"phishguard/internal/blacklist"
	"phishguard/pkg/domain"
	"time"
)

// Detector is the boundary of the detection core.
//
//go:generate mockgen -package mockdetector -source=interface.go -destination=mock/mockdetector.go *
type Detector interface {
	// CheckURL returns the verdict for rawURL as seen by the display context
	// contextID, which may be empty. Signal failures never fail a check.
	CheckURL(ctx context.Context, rawURL string, contextID string) (domain.Verdict, error)
	// RecordCookieSnapshot stores cookie telemetry for a display context.
	RecordCookieSnapshot(ctx context.Context, contextID string, snapshot domain.CookieSnapshot) error
	// RecordCookies summarizes individual cookies and records the snapshot.
	RecordCookies(ctx context.Context, contextID string, url string, cookies []domain.Cookie) error
	// MergeCookies merges the cookie telemetry of contextID into the cached
	// verdict of url. It returns nil when nothing was merged.
	MergeCookies(ctx context.Context, contextID string, url string) (*domain.Verdict, error)
	// ReportPhishing blacklists the domain of rawURL.
	ReportPhishing(ctx context.Context, rawURL string) error
	// ReportFalsePositive allowlists the domain of rawURL.
	ReportFalsePositive(ctx context.Context, rawURL string) error
	// RefreshBlacklist refreshes the blacklist from the remote feed.
	RefreshBlacklist(ctx context.Context) (blacklist.Result, error)
	// ContextVerdict returns the latest verdict delivered to contextID.
	ContextVerdict(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error)
	// Preferences returns the flags of a client.
	Preferences(ctx context.Context, clientID domain.ClientID) (domain.Preferences, error)
	// SavePreferences stores the flags of a client.
	SavePreferences(ctx context.Context, clientID domain.ClientID, prefs domain.Preferences) error
	// Subscribe returns a channel of events for contextID, or for every
	// context when contextID is empty, and a function releasing it.
	Subscribe(contextID string) (<-chan domain.Event, func())
}

// Scheduler runs cookie merges after a delay.
type Scheduler interface {
	ScheduleCookieMerge(ctx context.Context, contextID string, url string, delay time.Duration) error
}
