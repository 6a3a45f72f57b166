// Package ml provides the pluggable risk estimators behind the ML signal: a
// feature-weighted stand-in model, a remote reputation backed scorer and a
// fallback chain combining them.
package ml

import (
	"context"
	"hash/fnv"
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/lexical"
	"phishguard/pkg/domain"
	"phishguard/pkg/hostname"
	"strings"
)

// HeuristicOptions holds the feature weights of the stand-in model.
type HeuristicOptions struct {
	// MaxJitter bounds the base score derived from the URL hash.
	MaxJitter      float64
	BrandWeight    float64
	VerifyWeight   float64
	LoginWeight    float64
	TLDWeight      float64
	HyphenWeight   float64
	SuspiciousTLDs []string
	// Confidence reported with every score.
	Confidence float64
}

// DefaultHeuristicOptions returns the production weights.
func DefaultHeuristicOptions() HeuristicOptions {
	return HeuristicOptions{
		MaxJitter:      30,
		BrandWeight:    25,
		VerifyWeight:   20,
		LoginWeight:    15,
		TLDWeight:      25,
		HyphenWeight:   5,
		SuspiciousTLDs: lexical.SuspiciousTLDs(),
		Confidence:     0.5,
	}
}

// Heuristic is a deterministic stand-in for a trained classifier. Its base
// score is derived from a hash of the URL so repeated checks agree.
type Heuristic struct {
	options HeuristicOptions
	jitter  func(rawURL string) float64
}

var _ scorer.Scorer = (*Heuristic)(nil)

// NewHeuristic creates a Heuristic scorer.
func NewHeuristic(options HeuristicOptions) *Heuristic {
	return &Heuristic{
		options: options,
		jitter:  HashJitter(options.MaxJitter),
	}
}

// HashJitter maps a URL to a stable value in [0,maxJitter).
func HashJitter(maxJitter float64) func(string) float64 {
	return func(rawURL string) float64 {
		h := fnv.New32a()
		_, _ = h.Write([]byte(rawURL))

		return float64(h.Sum32()%10000) / 10000 * maxJitter
	}
}

func (h *Heuristic) Name() string { return domain.SignalML }

func (h *Heuristic) Score(_ context.Context, rawURL string) (scorer.Signal, error) {
	o := h.options
	host := hostname.Normalize(rawURL)
	containsAny := func(tokens ...string) bool {
		for _, t := range tokens {
			if strings.Contains(host, t) {
				return true
			}
		}

		return false
	}

	score := h.jitter(rawURL)
	if containsAny("paypal", "bank") {
		score += o.BrandWeight
	}
	if containsAny("verify", "security") {
		score += o.VerifyWeight
	}
	if containsAny("login", "signin") {
		score += o.LoginWeight
	}
	for _, tld := range o.SuspiciousTLDs {
		if strings.HasSuffix(host, tld) {
			score += o.TLDWeight

			break
		}
	}
	score += o.HyphenWeight * float64(strings.Count(host, "-"))

	return scorer.Signal{Score: scorer.Clamp(score), Confidence: o.Confidence}, nil
}
