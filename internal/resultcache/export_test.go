package resultcache

import "time"

// SetNow replaces the clock used for degraded entries.
func (c *Cache) SetNow(now func() time.Time) { c.now = now }
