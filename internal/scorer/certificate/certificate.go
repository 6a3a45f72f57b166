// Package certificate scores the transport security of a URL from the TLS
// certificate its host serves.
package certificate

import (
	"context"
	"net/url"
	"phishguard/internal/scorer"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Options holds the certificate risk policy.
type Options struct {
	// FreeCAs are matched case-insensitively against the issuer name.
	FreeCAs []string

	NotHTTPSWeight float64
	FreeCAWeight   float64
	NewWeight      float64
	ExpiringWeight float64
	MismatchWeight float64

	// NewWithin marks certificates issued more recently than this as new.
	NewWithin time.Duration
	// ExpiringWithin marks certificates expiring sooner than this as expiring.
	ExpiringWithin time.Duration
}

// DefaultOptions returns the production policy.
func DefaultOptions() Options {
	return Options{
		FreeCAs:        []string{"Let's Encrypt", "ZeroSSL", "SSL.com", "cPanel", "Cloudflare"},
		NotHTTPSWeight: 50,
		FreeCAWeight:   25,
		NewWeight:      10,
		ExpiringWeight: 15,
		MismatchWeight: 40,
		NewWithin:      3 * 24 * time.Hour,
		ExpiringWithin: 7 * 24 * time.Hour,
	}
}

// Scorer scores URLs from their certificate.
type Scorer struct {
	options   Options
	inspector Inspector
	now       func() time.Time
}

var _ scorer.Scorer = (*Scorer)(nil)

// New creates a Scorer that inspects certificates with inspector.
func New(inspector Inspector, options Options) *Scorer {
	return &Scorer{
		options:   options,
		inspector: inspector,
		now:       time.Now,
	}
}

func (s *Scorer) Name() string { return domain.SignalCertificate }

// Score returns NotHTTPSWeight for non-HTTPS URLs without any network access.
// For HTTPS URLs the certificate is inspected; when that fails the error is
// returned along with a zero-confidence zero score.
func (s *Scorer) Score(ctx context.Context, rawURL string) (scorer.Signal, error) {
	if !strings.HasPrefix(strings.ToLower(rawURL), "https://") {
		return scorer.Signal{Score: scorer.Clamp(s.options.NotHTTPSWeight), Confidence: 1}, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return scorer.Zero, serrors.Wrap(serrors.ErrParse, err, "could not parse url")
	}
	port := u.Port()
	if port == "" {
		port = "443"
	}

	cert, err := s.inspector.Inspect(ctx, u.Hostname(), port)
	if err != nil {
		return scorer.Zero, err
	}

	score, flags := s.Assess(cert)
	trace.SpanFromContext(ctx).SetAttributes(attribute.StringSlice("phishguard.certificate.flags", flags))
	logger.Debug(ctx, "certificate assessed",
		zap.String("issuer", cert.Issuer),
		zap.Float64("score", score),
		zap.Strings("flags", flags))

	return scorer.Signal{Score: score, Confidence: 1}, nil
}

// Assess scores a certificate and lists the flags that fired.
func (s *Scorer) Assess(cert *Certificate) (float64, []string) {
	var (
		score   float64
		reasons []string
		now     = s.now()
	)

	if s.isFreeCA(cert.Issuer) {
		score += s.options.FreeCAWeight
		reasons = append(reasons, "Certificate from free CA")
	}
	if !cert.NotBefore.IsZero() && now.Sub(cert.NotBefore) < s.options.NewWithin {
		score += s.options.NewWeight
		reasons = append(reasons, "Very new certificate")
	}
	if !cert.NotAfter.IsZero() && cert.NotAfter.Sub(now) < s.options.ExpiringWithin {
		score += s.options.ExpiringWeight
		reasons = append(reasons, "Certificate expiring soon")
	}
	if !cert.HostnameMatch {
		score += s.options.MismatchWeight
		reasons = append(reasons, "Certificate domain mismatch")
	}

	return scorer.Clamp(score), reasons
}

func (s *Scorer) isFreeCA(issuer string) bool {
	issuer = strings.ToLower(issuer)
	for _, ca := range s.options.FreeCAs {
		if ca != "" && strings.Contains(issuer, strings.ToLower(ca)) {
			return true
		}
	}

	return false
}
