// Package cookie scores the cookie behavior of a page. Phishing kits rarely
// bother with Secure or HttpOnly cookies while carrying the trackers of the
// page they copied.
package cookie

import (
	"phishguard/internal/scorer"
	"phishguard/pkg/domain"
	"strings"
)

// Rules is the cookie rule table.
type Rules struct {
	// InsecureMinCookies and InsecureRatio: more than InsecureMinCookies cookies
	// with fewer than InsecureRatio of them Secure adds InsecureWeight.
	InsecureMinCookies int
	InsecureRatio      float64
	InsecureWeight     float64

	// ScriptableMinCookies and ScriptableRatio apply the same rule to HttpOnly.
	ScriptableMinCookies int
	ScriptableRatio      float64
	ScriptableWeight     float64

	// TrackingMax tracking cookies are tolerated, more add TrackingWeight.
	TrackingMax    int
	TrackingWeight float64

	// TrackingNames are substrings identifying tracking cookies.
	TrackingNames []string
}

// DefaultRules returns the production rule table.
func DefaultRules() Rules {
	return Rules{
		InsecureMinCookies:   5,
		InsecureRatio:        0.3,
		InsecureWeight:       25,
		ScriptableMinCookies: 8,
		ScriptableRatio:      0.3,
		ScriptableWeight:     25,
		TrackingMax:          3,
		TrackingWeight:       15,
		TrackingNames:        []string{"_ga", "_gid", "_gat", "fbp", "fbc"},
	}
}

// Assessment is the result of scoring a cookie snapshot.
type Assessment struct {
	Score   float64
	Reasons []string
}

// Scorer scores cookie snapshots.
type Scorer struct {
	rules Rules
}

// New creates a Scorer evaluating rules.
func New(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// Score evaluates every rule independently and sums the weights.
func (s *Scorer) Score(snapshot domain.CookieSnapshot) Assessment {
	r := s.rules
	var a Assessment
	count := float64(snapshot.CookieCount)

	if snapshot.CookieCount > r.InsecureMinCookies && float64(snapshot.SecureCookies) < r.InsecureRatio*count {
		a.Score += r.InsecureWeight
		a.Reasons = append(a.Reasons, "Lack of secure cookies")
	}
	if snapshot.CookieCount > r.ScriptableMinCookies && float64(snapshot.HTTPOnlyCookies) < r.ScriptableRatio*count {
		a.Score += r.ScriptableWeight
		a.Reasons = append(a.Reasons, "Lack of HttpOnly cookies")
	}
	if snapshot.TrackingCookies > r.TrackingMax {
		a.Score += r.TrackingWeight
		a.Reasons = append(a.Reasons, "Excessive tracking cookies")
	}
	a.Score = scorer.Clamp(a.Score)

	return a
}

// Summarize counts the attributes of individually reported cookies.
func (s *Scorer) Summarize(url string, cookies []domain.Cookie) domain.CookieSnapshot {
	snapshot := domain.CookieSnapshot{URL: url, CookieCount: len(cookies)}
	for _, c := range cookies {
		if c.Secure {
			snapshot.SecureCookies++
		}
		if c.HTTPOnly {
			snapshot.HTTPOnlyCookies++
		}
		if s.isTracking(c.Name) {
			snapshot.TrackingCookies++
		}
	}

	return snapshot
}

func (s *Scorer) isTracking(name string) bool {
	name = strings.ToLower(name)
	for _, t := range s.rules.TrackingNames {
		if strings.Contains(name, t) {
			return true
		}
	}

	return false
}
