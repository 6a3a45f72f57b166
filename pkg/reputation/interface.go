// Package reputation defines the interface used to ask a remote provider
// what it knows about a URL.
package reputation

import (
	"context"
	"phishguard/pkg/domain"
)

// Client is the abstraction for URL reputation providers.
//
//go:generate mockgen -package mockreputation -source=interface.go -destination=mock/mockreputation.go *
type Client interface {
	// Lookup returns the provider's latest report for the URL. It fails with
	// serrors.ErrNotFound when the provider has never analyzed the URL.
	Lookup(ctx context.Context, rawURL string) (*domain.ReputationReport, error)
	// Submit queues the URL for analysis and returns the analysis ID.
	Submit(ctx context.Context, rawURL string) (string, error)
	// Analysis returns the report of a submitted analysis. It fails with
	// serrors.ErrNotFound while the analysis is still running.
	Analysis(ctx context.Context, analysisID string) (*domain.ReputationReport, error)
}
