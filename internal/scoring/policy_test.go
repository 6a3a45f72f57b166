package scoring_test

import (
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/cookie"
	"phishguard/internal/scoring"
	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func policy() scoring.Policy {
	return scoring.DefaultPolicy().WithClock(func() time.Time { return fixedNow })
}

func sig(score float64) scorer.Signal { return scorer.Signal{Score: score, Confidence: 1} }

func TestPolicy_Combine(t *testing.T) {
	p := policy()

	tests := []struct {
		name           string
		h, c, m        float64
		score          float64
		reason         string
		phishing       bool
		classification domain.Classification
	}{
		{
			name:           "all zero",
			reason:         scoring.ReasonSafe,
			classification: domain.ClassificationSafe,
		},
		{
			name:           "weighted sum",
			h:              20, c: 10, m: 10,
			score:          35,
			reason:         scoring.ReasonSafe,
			classification: domain.ClassificationSuspicious,
		},
		{
			name:           "reason thresholds are strict",
			h:              40, c: 30, m: 35,
			score:          89,
			reason:         scoring.ReasonSafe,
			phishing:       true,
			classification: domain.ClassificationPhishing,
		},
		{
			name:           "all reasons",
			h:              45, c: 50, m: 40,
			score:          100,
			reason:         "Suspicious URL pattern, Certificate issues detected, ML analysis indicates risk",
			phishing:       true,
			classification: domain.ClassificationPhishing,
		},
		{
			name:           "exactly at threshold is not phishing",
			h:              65,
			score:          65,
			reason:         scoring.ReasonHeuristic,
			classification: domain.ClassificationSuspicious,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := p.Combine(sig(tt.h), sig(tt.c), sig(tt.m))
			require.InDelta(t, tt.score, v.Score, 1e-9)
			require.Equal(t, tt.reason, v.Reason)
			require.Equal(t, tt.phishing, v.IsPhishing)
			require.Equal(t, v.Score > p.PhishingThreshold, v.IsPhishing)
			require.Equal(t, tt.classification, v.Classification)
			require.Equal(t, domain.SourceScoring, v.Source)
			require.Equal(t, fixedNow, v.CheckedAt)
			require.InDelta(t, 1.0, v.Confidence, 1e-9)
		})
	}
}

func TestPolicy_Combine_Unavailable(t *testing.T) {
	p := policy()

	v := p.Combine(sig(30), scorer.Zero, scorer.Signal{Score: 20, Confidence: 0.5}, domain.SignalCertificate)
	require.InDelta(t, 46, v.Score, 1e-9)
	require.InDelta(t, 0.5, v.Confidence, 1e-9)
	require.Equal(t, []string{domain.SignalCertificate}, v.Details.Unavailable)
}

func TestPolicy_Tunable(t *testing.T) {
	p := policy()
	p.PhishingThreshold = 30
	p.HeuristicReasonMin = 10

	v := p.Combine(sig(31), scorer.Zero, scorer.Zero)
	require.True(t, v.IsPhishing)
	require.Equal(t, scoring.ReasonHeuristic, v.Reason)
}

func TestPolicy_ShortCircuitVerdicts(t *testing.T) {
	p := policy()

	b := p.Blacklisted()
	require.True(t, b.IsPhishing)
	require.InDelta(t, 100, b.Score, 1e-9)
	require.Equal(t, scoring.ReasonBlacklisted, b.Reason)
	require.Equal(t, domain.SourceBlacklist, b.Source)

	a := p.Allowlisted()
	require.False(t, a.IsPhishing)
	require.Zero(t, a.Score)
	require.Equal(t, domain.ClassificationSafe, a.Classification)

	u := p.Undetermined(domain.SignalHeuristic, domain.SignalCertificate, domain.SignalML)
	require.False(t, u.IsPhishing)
	require.Zero(t, u.Confidence)
	require.Equal(t, scoring.ReasonUndetermined, u.Reason)
	require.Equal(t, domain.ClassificationUnknown, u.Classification)
	require.Len(t, u.Details.Unavailable, 3)
}

func TestPolicy_MergeCookie(t *testing.T) {
	p := policy()
	all := cookie.Assessment{
		Score:   65,
		Reasons: []string{"Lack of secure cookies", "Lack of HttpOnly cookies", "Excessive tracking cookies"},
	}

	t.Run("merges and escalates", func(t *testing.T) {
		v := p.Combine(sig(30), sig(0), sig(0))
		require.False(t, v.IsPhishing)

		merged, ok := p.MergeCookie(v, all)
		require.True(t, ok)
		require.InDelta(t, 95, merged.Score, 1e-9)
		require.True(t, merged.IsPhishing)
		require.Equal(t, domain.ClassificationPhishing, merged.Classification)
		require.Equal(t,
			"Likely safe, Lack of secure cookies, Lack of HttpOnly cookies, Excessive tracking cookies",
			merged.Reason)
		require.NotNil(t, merged.Details.CookieScore)
		require.InDelta(t, 65, *merged.Details.CookieScore, 1e-9)
		require.Nil(t, v.Details.CookieScore, "input must not be mutated")
	})

	t.Run("caps at 100", func(t *testing.T) {
		v := p.Combine(sig(60), sig(40), sig(0))
		merged, ok := p.MergeCookie(v, all)
		require.True(t, ok)
		require.InDelta(t, 100, merged.Score, 1e-9)
		require.GreaterOrEqual(t, merged.Score, v.Score)
	})

	t.Run("below threshold", func(t *testing.T) {
		v := p.Combine(sig(30), sig(0), sig(0))
		merged, ok := p.MergeCookie(v, cookie.Assessment{Score: 20, Reasons: []string{"x"}})
		require.False(t, ok)
		require.Equal(t, v, merged)
	})

	t.Run("only once", func(t *testing.T) {
		v := p.Combine(sig(10), sig(0), sig(0))
		merged, ok := p.MergeCookie(v, all)
		require.True(t, ok)
		again, ok := p.MergeCookie(merged, all)
		require.False(t, ok)
		require.Equal(t, merged, again)
	})

	t.Run("short-circuit verdicts are final", func(t *testing.T) {
		_, ok := p.MergeCookie(p.Blacklisted(), all)
		require.False(t, ok)
		_, ok = p.MergeCookie(p.Allowlisted(), all)
		require.False(t, ok)
	})
}

func TestPolicy_Validate(t *testing.T) {
	require.NoError(t, scoring.DefaultPolicy().Validate())

	p := scoring.DefaultPolicy()
	p.PhishingThreshold = 100
	require.ErrorIs(t, p.Validate(), serrors.ErrBadRequest)

	p = scoring.DefaultPolicy()
	p.SuspiciousThreshold = 70
	require.ErrorIs(t, p.Validate(), serrors.ErrBadRequest)

	p = scoring.DefaultPolicy()
	p.MLWeight = -1
	require.ErrorIs(t, p.Validate(), serrors.ErrBadRequest)
}

func TestPolicy_Alert(t *testing.T) {
	p := policy()
	require.True(t, p.Alert(p.Blacklisted()))
	require.False(t, p.Alert(p.Combine(sig(70), sig(0), sig(0))))
}
