package domain

import "time"

// EventType distinguishes initial verdicts from later updates.
type EventType string

const (
	// EventVerdict is emitted when the synchronous pipeline produces a verdict.
	EventVerdict EventType = "verdict"
	// EventVerdictUpdated is emitted after cookie analysis changed a verdict.
	EventVerdictUpdated EventType = "verdictUpdated"
)

// Event is delivered to collaborators rendering verdicts. URL and ContextID
// let the receiver discard events for a page it has navigated away from.
type Event struct {
	Type      EventType `json:"type"`
	URL       string    `json:"url"`
	ContextID string    `json:"contextId"`
	Verdict   Verdict   `json:"verdict"`
	// Escalated is set when an update turned a non-phishing verdict into a phishing one.
	Escalated bool `json:"escalated"`
	// Alert is set when the verdict is risky enough to warrant a notification.
	Alert bool      `json:"alert"`
	At    time.Time `json:"at"`
}
