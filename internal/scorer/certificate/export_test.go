package certificate

import "time"

// SetNow overrides the clock used by Assess.
func (s *Scorer) SetNow(now func() time.Time) { s.now = now }
