package detector_test

import (
	"context"
	"phishguard/internal/blacklist"
	"phishguard/internal/detector"
	"phishguard/internal/resultcache"
	"phishguard/internal/scorer/certificate"
	mockcertificate "phishguard/internal/scorer/certificate/mock"
	"phishguard/internal/scorer/cookie"
	"phishguard/internal/scorer/lexical"
	"phishguard/internal/scorer/ml"
	"phishguard/internal/scoring"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newPipeline wires the production scorers around a mocked TLS inspector.
func newPipeline(t *testing.T) (detector.Detector, *mockcertificate.MockInspector) {
	t.Helper()

	strg := memory.New()
	store, err := blacklist.NewStore(strg, nil)
	require.NoError(t, err)
	inspector := mockcertificate.NewMockInspector(gomock.NewController(t))

	det, err := detector.New(detector.Deps{
		Storage:     strg,
		Cache:       resultcache.New(resultcache.Options{Size: 100, TTL: time.Hour, DegradedTTL: time.Minute}),
		Blacklist:   store,
		Lexical:     lexical.New(lexical.DefaultRules()),
		Certificate: certificate.New(inspector, certificate.DefaultOptions()),
		ML:          ml.NewHeuristic(ml.DefaultHeuristicOptions()),
		Cookies:     cookie.New(cookie.DefaultRules()),
		Policy:      scoring.DefaultPolicy(),
	}, defaultOptions())
	require.NoError(t, err)

	return det, inspector
}

func TestPipeline_ImpersonatingDomainIsPhishing(t *testing.T) {
	det, inspector := newPipeline(t)
	now := time.Now()
	inspector.EXPECT().Inspect(gomock.Any(), "paypa1-secure-login.verify-account.xyz", "443").
		Return(&certificate.Certificate{
			Issuer:        "R3, Let's Encrypt",
			NotBefore:     now.Add(-time.Hour),
			NotAfter:      now.Add(89 * 24 * time.Hour),
			HostnameMatch: true,
		}, nil)

	v, err := det.CheckURL(context.Background(), "https://paypa1-secure-login.verify-account.xyz/", "")
	require.NoError(t, err)
	require.True(t, v.IsPhishing)
	require.Equal(t, domain.ClassificationPhishing, v.Classification)
	require.Greater(t, v.Score, 65.0)
	require.InDelta(t, 100, v.Details.HeuristicScore, 1e-9)
	// free CA 25 + new 10
	require.InDelta(t, 35, v.Details.CertScore, 1e-9)
	require.Contains(t, v.Reason, scoring.ReasonHeuristic)
	require.Empty(t, v.Details.Unavailable)
}

func TestPipeline_GenuineBrandDomainIsSafe(t *testing.T) {
	det, inspector := newPipeline(t)
	now := time.Now()
	inspector.EXPECT().Inspect(gomock.Any(), "paypal.com", "443").
		Return(&certificate.Certificate{
			Issuer:        "DigiCert SHA2 Extended Validation Server CA",
			NotBefore:     now.Add(-200 * 24 * time.Hour),
			NotAfter:      now.Add(160 * 24 * time.Hour),
			HostnameMatch: true,
		}, nil)

	v, err := det.CheckURL(context.Background(), "https://paypal.com", "")
	require.NoError(t, err)
	require.False(t, v.IsPhishing)
	require.NotEqual(t, domain.ClassificationPhishing, v.Classification)
	require.Zero(t, v.Details.HeuristicScore)
	require.Zero(t, v.Details.CertScore)
	// only the stand-in model contributes, at most (25 + 30) * 0.8
	require.Less(t, v.Score, 45.0)
	require.Empty(t, v.Details.Unavailable)
}

func TestPipeline_PlainHTTPSkipsInspection(t *testing.T) {
	det, _ := newPipeline(t)

	v, err := det.CheckURL(context.Background(), "http://example.com", "")
	require.NoError(t, err)
	require.GreaterOrEqual(t, v.Details.CertScore, 50.0)
	require.Empty(t, v.Details.Unavailable)
}
