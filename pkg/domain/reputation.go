package domain

// ReputationReport is the outcome of a remote URL reputation lookup,
// expressed as the number of engines per category.
type ReputationReport struct {
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Harmless   int `json:"harmless"`
	Undetected int `json:"undetected"`
}

// Engines returns the number of engines that returned an opinion.
func (r ReputationReport) Engines() int {
	return r.Malicious + r.Suspicious + r.Harmless + r.Undetected
}
