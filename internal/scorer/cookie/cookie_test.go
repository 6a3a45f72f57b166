package cookie_test

import (
	"phishguard/internal/scorer/cookie"
	"phishguard/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorer_Score(t *testing.T) {
	s := cookie.New(cookie.DefaultRules())

	tests := []struct {
		name     string
		snapshot domain.CookieSnapshot
		score    float64
		reasons  []string
	}{
		{
			name:     "no cookies",
			snapshot: domain.CookieSnapshot{},
		},
		{
			name:     "all rules fire",
			snapshot: domain.CookieSnapshot{CookieCount: 10, SecureCookies: 1, HTTPOnlyCookies: 1, TrackingCookies: 4},
			score:    65,
			reasons:  []string{"Lack of secure cookies", "Lack of HttpOnly cookies", "Excessive tracking cookies"},
		},
		{
			name:     "few cookies are never insecure",
			snapshot: domain.CookieSnapshot{CookieCount: 5},
		},
		{
			name:     "insecure only below the httponly minimum",
			snapshot: domain.CookieSnapshot{CookieCount: 8, SecureCookies: 2, HTTPOnlyCookies: 0},
			score:    25,
			reasons:  []string{"Lack of secure cookies"},
		},
		{
			name:     "ratio is strict",
			snapshot: domain.CookieSnapshot{CookieCount: 10, SecureCookies: 3, HTTPOnlyCookies: 3},
		},
		{
			name:     "tracking threshold is strict",
			snapshot: domain.CookieSnapshot{CookieCount: 3, TrackingCookies: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := s.Score(tt.snapshot)
			require.InDelta(t, tt.score, a.Score, 1e-9)
			require.Equal(t, tt.reasons, a.Reasons)
		})
	}
}

func TestScorer_Summarize(t *testing.T) {
	s := cookie.New(cookie.DefaultRules())

	snapshot := s.Summarize("https://example.com/", []domain.Cookie{
		{Name: "_ga", Secure: true},
		{Name: "_gid"},
		{Name: "_fbp", HTTPOnly: true},
		{Name: "session", Secure: true, HTTPOnly: true},
		{Name: "_GAT_UA-1"},
	})

	require.Equal(t, domain.CookieSnapshot{
		URL:             "https://example.com/",
		CookieCount:     5,
		SecureCookies:   2,
		HTTPOnlyCookies: 2,
		TrackingCookies: 4,
	}, snapshot)
}
