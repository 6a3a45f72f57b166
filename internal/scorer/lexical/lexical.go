// Package lexical scores URLs from their text alone: brand impersonation,
// suspicious keywords and TLDs, and structural oddities of the host name.
package lexical

import (
	"context"
	"phishguard/internal/scorer"
	"phishguard/pkg/domain"
	"phishguard/pkg/hostname"
	"regexp"
	"strings"
)

var ipv4Literal = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)

// Finding is a rule that fired for a URL.
type Finding struct {
	Rule   string
	Match  string
	Weight float64
}

// Scorer is a pure, deterministic rule-based scorer.
type Scorer struct {
	rules Rules
}

var _ scorer.Scorer = (*Scorer)(nil)

// New creates a Scorer evaluating rules.
func New(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

func (s *Scorer) Name() string { return domain.SignalHeuristic }

// Score never fails and always reports full confidence.
func (s *Scorer) Score(_ context.Context, rawURL string) (scorer.Signal, error) {
	return scorer.Signal{Score: s.Evaluate(rawURL), Confidence: 1}, nil
}

// Evaluate returns the clamped sum of the weights of every finding.
func (s *Scorer) Evaluate(rawURL string) float64 {
	var sum float64
	for _, f := range s.Explain(rawURL) {
		sum += f.Weight
	}

	return scorer.Clamp(sum)
}

// Explain lists every rule that fires for rawURL.
func (s *Scorer) Explain(rawURL string) []Finding {
	r := s.rules
	host := hostname.Normalize(rawURL)
	full := strings.ToLower(rawURL)

	var findings []Finding
	add := func(rule, match string, weight float64) {
		findings = append(findings, Finding{Rule: rule, Match: match, Weight: weight})
	}

	for _, brand := range r.Brands {
		if strings.Contains(host, brand) && !hasBrandSuffix(host, brand, r.BrandSuffixes) {
			add("brand", brand, r.BrandWeight)
		}
	}

	for _, kw := range r.Keywords {
		if strings.Contains(host, kw.Token) || strings.Contains(full, kw.Token) {
			add("keyword", kw.Token, kw.Weight)
		}
	}

	for _, tld := range r.SuspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			add("tld", tld, r.TLDWeight)
		}
	}

	switch hyphens := strings.Count(host, "-"); {
	case hyphens > r.HyphenHigh:
		add("hyphens", host, r.ManyHyphens)
	case hyphens > 0:
		add("hyphens", host, r.SomeHyphens)
	}

	switch n := len(host); {
	case n > r.LengthHigh:
		add("length", host, r.LongDomain)
	case n > r.LengthMedium:
		add("length", host, r.MediumDomain)
	}

	if ipv4Literal.MatchString(host) {
		add("ip", host, r.IPLiteral)
	}

	switch dots := strings.Count(host, "."); {
	case dots > r.DotsHigh:
		add("subdomains", host, r.DeepSubdomains)
	case dots > r.DotsMedium:
		add("subdomains", host, r.SomeSubdomains)
	}

	for _, p := range r.Patterns {
		if p.MatchString(full) {
			add("pattern", p.String(), r.PatternWeight)
		}
	}

	return findings
}

func hasBrandSuffix(host, brand string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(host, brand+suffix) {
			return true
		}
	}

	return false
}
