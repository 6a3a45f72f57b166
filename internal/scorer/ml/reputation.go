package ml

import (
	"context"
	"errors"
	"fmt"
	"phishguard/internal/scorer"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/reputation"
	"phishguard/pkg/serrors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// maliciousFloor is the minimum score of a URL flagged by at least one engine.
const maliciousFloor = 70

const (
	pendingSize = 4096
	pendingTTL  = 30 * time.Minute
)

// Reputation scores URLs from the verdicts of a remote reputation provider.
type Reputation struct {
	client reputation.Client
	// pending maps submitted URLs to their analysis ID.
	pending *expirable.LRU[string, string]
}

var _ scorer.Scorer = (*Reputation)(nil)

// NewReputation creates a Reputation scorer.
func NewReputation(client reputation.Client) *Reputation {
	return &Reputation{
		client:  client,
		pending: expirable.NewLRU[string, string](pendingSize, nil, pendingTTL),
	}
}

func (r *Reputation) Name() string { return domain.SignalML }

// Score looks the URL up. Unknown URLs are submitted for analysis and the
// current check fails with ErrNotFound; later checks read the submitted
// analysis until it completes.
func (r *Reputation) Score(ctx context.Context, rawURL string) (scorer.Signal, error) {
	if id, ok := r.pending.Get(rawURL); ok {
		report, err := r.client.Analysis(ctx, id)
		switch {
		case err == nil:
			r.pending.Remove(rawURL)

			return ReportSignal(report)
		case errors.Is(err, serrors.ErrNotFound):
			return scorer.Zero, fmt.Errorf("reputation analysis pending: %w", err)
		}
		logger.Debug(ctx, "could not read analysis", zap.String("analysisID", id), zap.Error(err))
		r.pending.Remove(rawURL)
	}

	report, err := r.client.Lookup(ctx, rawURL)
	if errors.Is(err, serrors.ErrNotFound) {
		if id, subErr := r.client.Submit(ctx, rawURL); subErr != nil {
			logger.Debug(ctx, "could not submit url for analysis", zap.Error(subErr))
		} else {
			r.pending.Add(rawURL, id)
			logger.Debug(ctx, "submitted url for analysis", zap.String("analysisID", id))
		}

		return scorer.Zero, fmt.Errorf("reputation unknown: %w", err)
	}
	if err != nil {
		return scorer.Zero, fmt.Errorf("could not look up reputation: %w", err)
	}

	return ReportSignal(report)
}

// ReportSignal converts a reputation report into a signal: the share of
// engines flagging the URL, suspicious verdicts counting half, floored at
// maliciousFloor when any engine flags it as malicious.
func ReportSignal(report *domain.ReputationReport) (scorer.Signal, error) {
	engines := report.Engines()
	if engines == 0 {
		return scorer.Zero, serrors.With(serrors.ErrNotFound, "no engine returned an opinion")
	}

	score := 100 * (float64(report.Malicious) + 0.5*float64(report.Suspicious)) / float64(engines)
	if report.Malicious > 0 && score < maliciousFloor {
		score = maliciousFloor
	}

	return scorer.Signal{Score: scorer.Clamp(score), Confidence: 1}, nil
}
