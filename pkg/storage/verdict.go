package storage

import (
	"context"
	"phishguard/pkg/domain"
)

// VerdictStorage persists the latest verdict delivered to each display context.
type VerdictStorage interface {
	// SaveVerdictSnapshot inserts or replaces the snapshot of its context.
	SaveVerdictSnapshot(ctx context.Context, snapshot domain.VerdictSnapshot) error
	// VerdictSnapshot returns the snapshot of a context, or nil if none exists.
	VerdictSnapshot(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error)
	// LockVerdictSnapshot behaves like VerdictSnapshot and additionally locks
	// the snapshot until the surrounding transaction ends. It must be called
	// within WithTx.
	LockVerdictSnapshot(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error)
}

// CookieStorage persists the latest cookie telemetry of each display context.
type CookieStorage interface {
	// SaveCookieSnapshot inserts or replaces the cookie snapshot of a context.
	SaveCookieSnapshot(ctx context.Context, contextID string, snapshot domain.CookieSnapshot) error
	// CookieSnapshot returns the cookie snapshot of a context, or nil if none exists.
	CookieSnapshot(ctx context.Context, contextID string) (*domain.CookieSnapshot, error)
}

// PreferencesStorage persists user-tunable flags per client.
type PreferencesStorage interface {
	// Preferences returns the saved preferences of a client, or
	// domain.DefaultPreferences when none were saved.
	Preferences(ctx context.Context, clientID domain.ClientID) (domain.Preferences, error)
	// SavePreferences stores the preferences of a client.
	SavePreferences(ctx context.Context, clientID domain.ClientID, prefs domain.Preferences) error
}
