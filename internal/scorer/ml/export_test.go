package ml

// SetJitter replaces the base score function.
func (h *Heuristic) SetJitter(jitter func(string) float64) { h.jitter = jitter }
