package ml

import (
	"context"
	"phishguard/internal/scorer"
	"phishguard/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// DefaultPrimaryShare is the share of the caller's remaining deadline given
// to the primary scorer.
const DefaultPrimaryShare = 0.7

// Fallback asks primary first and secondary when primary fails.
type Fallback struct {
	primary   scorer.Scorer
	secondary scorer.Scorer
	// primaryShare of the remaining deadline is spent on primary so that
	// secondary still runs inside the caller's budget.
	primaryShare float64
}

var _ scorer.Scorer = (*Fallback)(nil)

// NewFallback chains two scorers. primaryShare outside (0, 1) falls back
// to DefaultPrimaryShare.
func NewFallback(primary, secondary scorer.Scorer, primaryShare float64) *Fallback {
	if primaryShare <= 0 || primaryShare >= 1 {
		primaryShare = DefaultPrimaryShare
	}

	return &Fallback{primary: primary, secondary: secondary, primaryShare: primaryShare}
}

func (f *Fallback) Name() string { return f.primary.Name() }

func (f *Fallback) Score(ctx context.Context, rawURL string) (scorer.Signal, error) {
	sig, err := f.scorePrimary(ctx, rawURL)
	if err == nil {
		return sig, nil
	}

	logger.Debug(ctx, "primary scorer failed, using fallback", zap.Error(err))

	return f.secondary.Score(ctx, rawURL)
}

// scorePrimary runs primary under its own share of ctx's deadline and
// abandons it once that share is spent, even when primary ignores ctx.
func (f *Fallback) scorePrimary(ctx context.Context, rawURL string) (scorer.Signal, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return f.primary.Score(ctx, rawURL)
	}

	budget := time.Duration(float64(time.Until(deadline)) * f.primaryShare)
	primaryCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	type result struct {
		signal scorer.Signal
		err    error
	}
	done := make(chan result, 1)
	go func() {
		sig, err := f.primary.Score(primaryCtx, rawURL)
		done <- result{signal: sig, err: err}
	}()

	select {
	case r := <-done:
		return r.signal, r.err
	case <-primaryCtx.Done():
		return scorer.Zero, primaryCtx.Err()
	}
}
