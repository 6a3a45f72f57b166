package domain

import (
	"slices"
	"time"
)

// Classification is the coarse risk bucket a verdict falls into.
type Classification string

const (
	// ClassificationPhishing marks a verdict whose score exceeds the phishing threshold.
	ClassificationPhishing Classification = "phishing"
	// ClassificationSuspicious marks a verdict above the suspicious threshold but not phishing.
	ClassificationSuspicious Classification = "suspicious"
	// ClassificationSafe marks a verdict below every threshold.
	ClassificationSafe Classification = "safe"
	// ClassificationUnknown marks a verdict produced when no signal could be measured.
	ClassificationUnknown Classification = "unknown"
)

// VerdictSource records which pipeline state produced a verdict.
type VerdictSource string

const (
	// SourceScoring is used for verdicts combined from the scorers.
	SourceScoring VerdictSource = "scoring"
	// SourceBlacklist is used for blacklist short-circuit verdicts.
	SourceBlacklist VerdictSource = "blacklist"
	// SourceAllowlist is used for domains suppressed by a false-positive report.
	SourceAllowlist VerdictSource = "allowlist"
	// SourceUndetermined is used when every scorer failed.
	SourceUndetermined VerdictSource = "undetermined"
)

// Signal names used in ScoreBreakdown.Unavailable and in diagnostics.
const (
	SignalHeuristic   = "heuristic"
	SignalCertificate = "certificate"
	SignalML          = "ml"
	SignalCookie      = "cookie"
)

// ScoreBreakdown holds the individual signal scores that produced a verdict.
type ScoreBreakdown struct {
	HeuristicScore float64 `json:"heuristicScore" yaml:"heuristicScore"`
	CertScore      float64 `json:"certScore"      yaml:"certScore"`
	MLScore        float64 `json:"mlScore"        yaml:"mlScore"`
	// CookieScore is set once cookie analysis has been merged into the verdict.
	CookieScore *float64 `json:"cookieScore,omitempty" yaml:"cookieScore,omitempty"`
	// Unavailable lists the signals that failed and were treated as zero.
	Unavailable []string `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// Verdict is the combined risk assessment for one URL check.
// IsPhishing is always derived from Score by the scoring policy and is never
// set independently.
type Verdict struct {
	IsPhishing     bool           `json:"isPhishing"     yaml:"isPhishing"`
	Score          float64        `json:"score"          yaml:"score"`
	Reason         string         `json:"reason"         yaml:"reason"`
	Details        ScoreBreakdown `json:"details"        yaml:"details"`
	Classification Classification `json:"classification" yaml:"classification"`
	// Confidence is the mean confidence of the signals that contributed, in [0,1].
	Confidence float64       `json:"confidence" yaml:"confidence"`
	Source     VerdictSource `json:"source"     yaml:"source"`
	CheckedAt  time.Time     `json:"checkedAt"  yaml:"checkedAt"`
}

// Clone returns a deep copy of the verdict so that callers never share
// mutable state with the cache.
func (v Verdict) Clone() Verdict {
	out := v
	if v.Details.CookieScore != nil {
		score := *v.Details.CookieScore
		out.Details.CookieScore = &score
	}
	out.Details.Unavailable = slices.Clone(v.Details.Unavailable)

	return out
}

// CookieMerged reports whether cookie analysis was already merged.
func (v Verdict) CookieMerged() bool { return v.Details.CookieScore != nil }

// VerdictSnapshot is the latest verdict delivered to a display context
// (a browser tab or an agent session).
type VerdictSnapshot struct {
	ContextID string    `json:"contextId"`
	URL       string    `json:"url"`
	Verdict   Verdict   `json:"verdict"`
	UpdatedAt time.Time `json:"updatedAt"`
}
