// Package scoring turns scorer signals into verdicts. Every weight and
// threshold lives in Policy so operators can tune sensitivity through
// configuration.
package scoring

import (
	"fmt"
	"phishguard/internal/config"
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/cookie"
	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
	"strings"
	"time"
)

// Reasons produced by the policy.
const (
	ReasonHeuristic    = "Suspicious URL pattern"
	ReasonCertificate  = "Certificate issues detected"
	ReasonML           = "ML analysis indicates risk"
	ReasonSafe         = "Likely safe"
	ReasonBlacklisted  = "Blacklisted domain"
	ReasonAllowlisted  = "Reported as safe"
	ReasonUndetermined = "Could not determine"
)

// Policy holds the weights and thresholds of score combination.
type Policy struct {
	HeuristicWeight float64
	CertWeight      float64
	MLWeight        float64

	// PhishingThreshold is the score a verdict must exceed to be phishing.
	PhishingThreshold float64
	// SuspiciousThreshold is the score a verdict must exceed to be suspicious.
	SuspiciousThreshold float64
	// AlertThreshold is the score a phishing verdict must exceed to raise an alert.
	AlertThreshold float64

	HeuristicReasonMin float64
	CertReasonMin      float64
	MLReasonMin        float64

	// CookieMergeMin is the cookie score that must be exceeded for a merge.
	CookieMergeMin float64

	now func() time.Time
}

// DefaultPolicy returns the production policy.
func DefaultPolicy() Policy {
	return Policy{
		HeuristicWeight:     1.0,
		CertWeight:          0.7,
		MLWeight:            0.8,
		PhishingThreshold:   65,
		SuspiciousThreshold: 30,
		AlertThreshold:      85,
		HeuristicReasonMin:  40,
		CertReasonMin:       30,
		MLReasonMin:         35,
		CookieMergeMin:      20,
	}
}

// NewPolicy constructs a Policy from the provided application config.
func NewPolicy(cfg *config.Config) Policy {
	p := cfg.Policy

	return Policy{
		HeuristicWeight:     p.HeuristicWeight,
		CertWeight:          p.CertWeight,
		MLWeight:            p.MLWeight,
		PhishingThreshold:   p.PhishingThreshold,
		SuspiciousThreshold: p.SuspiciousThreshold,
		AlertThreshold:      p.AlertThreshold,
		HeuristicReasonMin:  p.HeuristicReasonMin,
		CertReasonMin:       p.CertReasonMin,
		MLReasonMin:         p.MLReasonMin,
		CookieMergeMin:      p.CookieMergeMin,
	}
}

// Validate rejects policies that can never or always classify a URL as phishing.
func (p Policy) Validate() error {
	if p.PhishingThreshold < 0 || p.PhishingThreshold >= 100 {
		return serrors.With(serrors.ErrBadRequest, "phishing threshold %v is outside [0,100)", p.PhishingThreshold)
	}
	if p.SuspiciousThreshold < 0 || p.SuspiciousThreshold > p.PhishingThreshold {
		return serrors.With(serrors.ErrBadRequest,
			"suspicious threshold %v must be within [0,%v]", p.SuspiciousThreshold, p.PhishingThreshold)
	}
	for name, w := range map[string]float64{
		"heuristic": p.HeuristicWeight,
		"cert":      p.CertWeight,
		"ml":        p.MLWeight,
	} {
		if w < 0 {
			return serrors.With(serrors.ErrBadRequest, "%s weight must not be negative", name)
		}
	}

	return nil
}

// WithClock returns a copy of the policy stamping verdicts with now.
func (p Policy) WithClock(now func() time.Time) Policy {
	p.now = now

	return p
}

func (p Policy) timestamp() time.Time {
	if p.now != nil {
		return p.now()
	}

	return time.Now().UTC()
}

// IsPhishing reports whether score exceeds the phishing threshold.
func (p Policy) IsPhishing(score float64) bool { return score > p.PhishingThreshold }

// Alert reports whether a verdict is risky enough to notify the user.
func (p Policy) Alert(v domain.Verdict) bool { return v.IsPhishing && v.Score > p.AlertThreshold }

// Classify buckets a score.
func (p Policy) Classify(score float64) domain.Classification {
	switch {
	case p.IsPhishing(score):
		return domain.ClassificationPhishing
	case score > p.SuspiciousThreshold:
		return domain.ClassificationSuspicious
	default:
		return domain.ClassificationSafe
	}
}

// Combine aggregates the three signals into a verdict. unavailable names the
// signals that failed and were passed in as scorer.Zero.
func (p Policy) Combine(heuristic, cert, ml scorer.Signal, unavailable ...string) domain.Verdict {
	score := scorer.Clamp(heuristic.Score*p.HeuristicWeight + cert.Score*p.CertWeight + ml.Score*p.MLWeight)

	var reasons []string
	if heuristic.Score > p.HeuristicReasonMin {
		reasons = append(reasons, ReasonHeuristic)
	}
	if cert.Score > p.CertReasonMin {
		reasons = append(reasons, ReasonCertificate)
	}
	if ml.Score > p.MLReasonMin {
		reasons = append(reasons, ReasonML)
	}
	reason := ReasonSafe
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}

	return domain.Verdict{
		IsPhishing: p.IsPhishing(score),
		Score:      score,
		Reason:     reason,
		Details: domain.ScoreBreakdown{
			HeuristicScore: heuristic.Score,
			CertScore:      cert.Score,
			MLScore:        ml.Score,
			Unavailable:    unavailable,
		},
		Classification: p.Classify(score),
		Confidence:     (heuristic.Confidence + cert.Confidence + ml.Confidence) / 3,
		Source:         domain.SourceScoring,
		CheckedAt:      p.timestamp(),
	}
}

// Blacklisted is the verdict for a known-bad domain.
func (p Policy) Blacklisted() domain.Verdict {
	return domain.Verdict{
		IsPhishing:     true,
		Score:          100,
		Reason:         ReasonBlacklisted,
		Classification: domain.ClassificationPhishing,
		Confidence:     1,
		Source:         domain.SourceBlacklist,
		CheckedAt:      p.timestamp(),
	}
}

// Allowlisted is the verdict for a domain reported as a false positive.
func (p Policy) Allowlisted() domain.Verdict {
	return domain.Verdict{
		Reason:         ReasonAllowlisted,
		Classification: domain.ClassificationSafe,
		Confidence:     1,
		Source:         domain.SourceAllowlist,
		CheckedAt:      p.timestamp(),
	}
}

// Undetermined is the verdict when no signal could be measured.
func (p Policy) Undetermined(unavailable ...string) domain.Verdict {
	return domain.Verdict{
		Reason:         ReasonUndetermined,
		Details:        domain.ScoreBreakdown{Unavailable: unavailable},
		Classification: domain.ClassificationUnknown,
		Source:         domain.SourceUndetermined,
		CheckedAt:      p.timestamp(),
	}
}

// MergeCookie adds a cookie assessment to a scored verdict. It reports false
// and returns v unchanged when the assessment is below the merge threshold,
// when cookies were already merged, or when v did not come from scoring.
// The merged score never decreases, so IsPhishing never flips back to false.
func (p Policy) MergeCookie(v domain.Verdict, a cookie.Assessment) (domain.Verdict, bool) {
	if a.Score <= p.CookieMergeMin || v.CookieMerged() || v.Source != domain.SourceScoring {
		return v, false
	}

	out := v.Clone()
	out.Score = scorer.Clamp(v.Score + a.Score)
	out.IsPhishing = p.IsPhishing(out.Score)
	out.Classification = p.Classify(out.Score)
	out.Reason = strings.Join(append([]string{v.Reason}, a.Reasons...), ", ")

	score := a.Score
	out.Details.CookieScore = &score
	out.CheckedAt = p.timestamp()

	return out, true
}

// String describes the policy for logs.
func (p Policy) String() string {
	return fmt.Sprintf("weights=%v/%v/%v phishing>%v suspicious>%v",
		p.HeuristicWeight, p.CertWeight, p.MLWeight, p.PhishingThreshold, p.SuspiciousThreshold)
}
