package ml_test

import (
	"context"
	"errors"
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/ml"
	mockscorer "phishguard/internal/scorer/mock"
	"phishguard/pkg/domain"
	mockreputation "phishguard/pkg/reputation/mock"
	"phishguard/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHeuristic_Weights(t *testing.T) {
	h := ml.NewHeuristic(ml.DefaultHeuristicOptions())
	h.SetJitter(func(string) float64 { return 0 })

	tests := []struct {
		url  string
		want float64
	}{
		{url: "https://example.com/", want: 0},
		{url: "https://paypal.com/", want: 25},
		{url: "https://mybank.example/", want: 25},
		{url: "https://signin.example/", want: 15},
		// paypal 25 + verify 20 + tld 25 + 2 hyphens 10
		{url: "https://secure-paypal-verify.xyz/", want: 80},
		// 25 + 20 + 15 + 25 + 7 hyphens 35, clamped
		{url: "https://paypal-bank-login-verify-security-a-b-c.tk/", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			sig, err := h.Score(context.Background(), tt.url)
			require.NoError(t, err)
			require.InDelta(t, tt.want, sig.Score, 1e-9)
			require.InDelta(t, 0.5, sig.Confidence, 1e-9)
		})
	}
}

func TestHeuristic_DeterministicAndBounded(t *testing.T) {
	h := ml.NewHeuristic(ml.DefaultHeuristicOptions())

	for _, u := range []string{"https://example.com/", "https://a.example/x?y=z", "garbage", ""} {
		first, err := h.Score(context.Background(), u)
		require.NoError(t, err)
		second, err := h.Score(context.Background(), u)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.GreaterOrEqual(t, first.Score, 0.0)
		require.LessOrEqual(t, first.Score, 100.0)
	}
}

func TestHashJitter_Range(t *testing.T) {
	jitter := ml.HashJitter(30)
	for _, u := range []string{"", "a", "https://example.com/", "https://example.com/?q=1"} {
		v := jitter(u)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 30.0)
	}
}

func TestReportSignal(t *testing.T) {
	tests := []struct {
		name   string
		report domain.ReputationReport
		want   float64
	}{
		{name: "single malicious engine hits the floor", report: domain.ReputationReport{Malicious: 1, Harmless: 79}, want: 70},
		{name: "majority malicious", report: domain.ReputationReport{Malicious: 70, Harmless: 10}, want: 87.5},
		{name: "suspicious counts half", report: domain.ReputationReport{Suspicious: 10, Harmless: 70}, want: 6.25},
		{name: "clean", report: domain.ReputationReport{Harmless: 60, Undetected: 20}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := ml.ReportSignal(&tt.report)
			require.NoError(t, err)
			require.InDelta(t, tt.want, sig.Score, 1e-9)
			require.InDelta(t, 1, sig.Confidence, 1e-9)
		})
	}

	_, err := ml.ReportSignal(&domain.ReputationReport{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestReputation_Score(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockreputation.NewMockClient(ctrl)
	r := ml.NewReputation(client)

	client.EXPECT().Lookup(gomock.Any(), "https://evil.example/").
		Return(&domain.ReputationReport{Malicious: 5, Harmless: 5}, nil)

	sig, err := r.Score(context.Background(), "https://evil.example/")
	require.NoError(t, err)
	require.InDelta(t, 70, sig.Score, 1e-9)
}

func TestReputation_UnknownURLIsSubmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockreputation.NewMockClient(ctrl)
	r := ml.NewReputation(client)

	gomock.InOrder(
		client.EXPECT().Lookup(gomock.Any(), "https://new.example/").
			Return(nil, serrors.With(serrors.ErrNotFound, "not found")),
		client.EXPECT().Submit(gomock.Any(), "https://new.example/").Return("u-1", nil),
	)

	sig, err := r.Score(context.Background(), "https://new.example/")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, scorer.Zero, sig)
}

func TestReputation_ReadsSubmittedAnalysis(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mockreputation.NewMockClient(ctrl)
	r := ml.NewReputation(client)

	const url = "https://new.example/"
	gomock.InOrder(
		client.EXPECT().Lookup(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrNotFound, "not found")),
		client.EXPECT().Submit(gomock.Any(), url).Return("u-1", nil),
		client.EXPECT().Analysis(gomock.Any(), "u-1").Return(nil, serrors.With(serrors.ErrNotFound, "queued")),
		client.EXPECT().Analysis(gomock.Any(), "u-1").Return(&domain.ReputationReport{Malicious: 8, Harmless: 2}, nil),
		client.EXPECT().Lookup(gomock.Any(), url).Return(&domain.ReputationReport{Harmless: 10}, nil),
	)

	_, err := r.Score(ctx, url)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = r.Score(ctx, url)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	sig, err := r.Score(ctx, url)
	require.NoError(t, err)
	require.InDelta(t, 80, sig.Score, 1e-9)

	// a completed analysis is read once, then lookups take over
	sig, err = r.Score(ctx, url)
	require.NoError(t, err)
	require.Zero(t, sig.Score)
}

func TestReputation_FailedAnalysisFallsBackToLookup(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mockreputation.NewMockClient(ctrl)
	r := ml.NewReputation(client)

	const url = "https://new.example/"
	gomock.InOrder(
		client.EXPECT().Lookup(gomock.Any(), url).Return(nil, serrors.With(serrors.ErrNotFound, "not found")),
		client.EXPECT().Submit(gomock.Any(), url).Return("u-1", nil),
		client.EXPECT().Analysis(gomock.Any(), "u-1").Return(nil, serrors.With(serrors.ErrFetch, "reset")),
		client.EXPECT().Lookup(gomock.Any(), url).Return(&domain.ReputationReport{Malicious: 1, Harmless: 9}, nil),
	)

	_, err := r.Score(ctx, url)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	sig, err := r.Score(ctx, url)
	require.NoError(t, err)
	require.InDelta(t, 70, sig.Score, 1e-9)
}

func TestReputation_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockreputation.NewMockClient(ctrl)
	r := ml.NewReputation(client)

	client.EXPECT().Lookup(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrRateLimited, "slow down"))

	_, err := r.Score(context.Background(), "https://evil.example/")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockscorer.NewMockScorer(ctrl)
	secondary := mockscorer.NewMockScorer(ctrl)
	f := ml.NewFallback(primary, secondary, ml.DefaultPrimaryShare)

	primary.EXPECT().Name().Return(domain.SignalML).AnyTimes()
	require.Equal(t, domain.SignalML, f.Name())

	primary.EXPECT().Score(gomock.Any(), "https://a.example/").Return(scorer.Signal{Score: 90, Confidence: 1}, nil)
	sig, err := f.Score(context.Background(), "https://a.example/")
	require.NoError(t, err)
	require.InDelta(t, 90, sig.Score, 1e-9)

	primary.EXPECT().Score(gomock.Any(), "https://b.example/").Return(scorer.Zero, errors.New("down"))
	secondary.EXPECT().Score(gomock.Any(), "https://b.example/").Return(scorer.Signal{Score: 12, Confidence: 0.5}, nil)
	sig, err = f.Score(context.Background(), "https://b.example/")
	require.NoError(t, err)
	require.InDelta(t, 12, sig.Score, 1e-9)
}

func TestFallback_HangingPrimaryLeavesBudgetForSecondary(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockscorer.NewMockScorer(ctrl)
	f := ml.NewFallback(primary, ml.NewHeuristic(ml.DefaultHeuristicOptions()), 0.5)

	primary.EXPECT().Score(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (scorer.Signal, error) {
			<-ctx.Done()

			return scorer.Zero, ctx.Err()
		})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	sig, err := f.Score(ctx, "https://secure-paypal-verify.xyz/")
	require.NoError(t, err)
	require.InDelta(t, 0.5, sig.Confidence, 1e-9)
	require.NoError(t, ctx.Err(), "secondary must answer before the caller's deadline")
}

func TestFallback_PrimaryIgnoringContextIsAbandoned(t *testing.T) {
	ctrl := gomock.NewController(t)
	primary := mockscorer.NewMockScorer(ctrl)
	secondary := mockscorer.NewMockScorer(ctrl)
	f := ml.NewFallback(primary, secondary, 0.5)

	release := make(chan struct{})
	defer close(release)
	primary.EXPECT().Score(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (scorer.Signal, error) {
			<-release

			return scorer.Zero, nil
		})
	secondary.EXPECT().Score(gomock.Any(), "https://a.example/").Return(scorer.Signal{Score: 12, Confidence: 0.5}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	sig, err := f.Score(ctx, "https://a.example/")
	require.NoError(t, err)
	require.InDelta(t, 12, sig.Score, 1e-9)
}
