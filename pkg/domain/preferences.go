package domain

// Preferences are the user-tunable flags consumed by collaborators. They do
// not influence scoring.
type Preferences struct {
	RealTimeProtection bool `json:"realTimeProtection"`
	AutoBlock          bool `json:"autoBlock"`
	WarnMediumRisk     bool `json:"warnMediumRisk"`
}

// DefaultPreferences returns the preferences used until a user saves their own.
func DefaultPreferences() Preferences {
	return Preferences{
		RealTimeProtection: true,
		AutoBlock:          true,
		WarnMediumRisk:     true,
	}
}
