package lexical_test

import (
	"context"
	"phishguard/internal/scorer/lexical"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorer_Evaluate(t *testing.T) {
	s := lexical.New(lexical.DefaultRules())

	tests := []struct {
		name string
		url  string
		want float64
	}{
		{name: "genuine brand domain", url: "https://paypal.com/", want: 0},
		{name: "genuine brand with www", url: "https://www.netflix.com/browse", want: 0},
		{name: "plain domain", url: "https://example.com/", want: 0},
		// brand 35 + subdomains(3 dots) 10
		{name: "brand on foreign domain", url: "https://paypal.com.evil.net/", want: 45},
		// ip 30 + subdomains(3 dots) 10
		{name: "ipv4 host", url: "http://192.168.1.20/", want: 40},
		// subdomains(5 dots) 20
		{name: "deep subdomains", url: "https://a.b.c.d.example.com/", want: 20},
		// keyword login 15 + keyword secure 15 + pattern bank.*login.*secure 40
		{name: "compound pattern in path", url: "https://example.com/bank/login/secure", want: 70},
		// clamps well above 100
		{name: "stacked rules are clamped", url: "https://paypa1-secure-login.verify-account.xyz/", want: 100},
		{name: "malformed input does not panic", url: "http://[::1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, s.Evaluate(tt.url), 1e-9)
		})
	}
}

func TestScorer_ExplainImpersonationScenario(t *testing.T) {
	s := lexical.New(lexical.DefaultRules())

	findings := s.Explain("https://paypa1-secure-login.verify-account.xyz/")

	keywords := map[string]bool{}
	rules := map[string]float64{}
	for _, f := range findings {
		rules[f.Rule] += f.Weight
		if f.Rule == "keyword" {
			keywords[f.Match] = true
		}
	}

	require.Equal(t, map[string]bool{"secure": true, "login": true, "verify": true, "account": true}, keywords)
	require.InDelta(t, 20, rules["tld"], 1e-9)
	require.InDelta(t, 25, rules["hyphens"], 1e-9)
	require.InDelta(t, 15, rules["length"], 1e-9)
	require.NotContains(t, rules, "brand")
}

func TestScorer_BrandStacksPerToken(t *testing.T) {
	s := lexical.New(lexical.DefaultRules())

	// paypal 35 + google 35 + hyphens(1) 10
	require.InDelta(t, 80, s.Evaluate("https://paypal-google.io/"), 1e-9)
}

func TestScorer_KeywordInPathOnly(t *testing.T) {
	s := lexical.New(lexical.DefaultRules())

	require.InDelta(t, 20, s.Evaluate("https://example.com/billing"), 1e-9)
	require.InDelta(t, 20, s.Evaluate("https://example.com/BILLING"), 1e-9)
}

func TestScorer_ScoreIsBoundedAndDeterministic(t *testing.T) {
	s := lexical.New(lexical.DefaultRules())
	urls := []string{
		"",
		"not a url",
		"https://secure-login-portal-account-example.top/identity/verification/required",
		"http://1.2.3.4.5.6.7.8/",
		"https://xn--pypal-4ve.com/",
		"https://www.google.com/search?q=verify+account+update",
	}

	for _, u := range urls {
		sig, err := s.Score(context.Background(), u)
		require.NoError(t, err)
		require.GreaterOrEqual(t, sig.Score, 0.0)
		require.LessOrEqual(t, sig.Score, 100.0)
		require.InDelta(t, 1.0, sig.Confidence, 1e-9)

		again, err := s.Score(context.Background(), u)
		require.NoError(t, err)
		require.Equal(t, sig, again)
	}
}

func TestScorer_CustomRules(t *testing.T) {
	rules := lexical.DefaultRules()
	rules.Keywords = []lexical.Keyword{{Token: "wallet", Weight: 50}}
	s := lexical.New(rules)

	require.InDelta(t, 50, s.Evaluate("https://example.com/wallet"), 1e-9)
	require.InDelta(t, 0, s.Evaluate("https://example.com/login"), 1e-9)
}
