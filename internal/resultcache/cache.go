// Package resultcache caches verdicts by exact URL string with a size bound
// and a TTL. Degraded verdicts, those with unavailable signals, expire sooner.
package resultcache

import (
	"phishguard/internal/config"
	"phishguard/pkg/domain"
	"phishguard/pkg/hostname"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Options bound the cache.
type Options struct {
	// Size is the maximum number of cached verdicts. Least recently used
	// entries are evicted first.
	Size int
	// TTL is how long a verdict stays cached. Zero disables expiry.
	TTL time.Duration
	// DegradedTTL is how long a verdict with unavailable signals stays cached.
	// Zero or a value above TTL means TTL.
	DegradedTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Size:        cfg.Cache.Size,
		TTL:         cfg.Cache.TTL,
		DegradedTTL: cfg.Cache.DegradedTTL,
	}
}

type entry struct {
	verdict domain.Verdict
	// expires is zero for entries that only expire through the LRU TTL.
	expires time.Time
}

// Cache is safe for concurrent use. Verdicts are copied on the way in and
// out so callers never share state with cached entries.
type Cache struct {
	// mu serializes Update against every other writer.
	mu          sync.Mutex
	lru         *expirable.LRU[string, entry]
	degradedTTL time.Duration
	now         func() time.Time
}

// New creates an empty cache.
func New(options Options) *Cache {
	c := &Cache{
		lru: expirable.NewLRU[string, entry](options.Size, nil, options.TTL),
		now: time.Now,
	}
	if options.DegradedTTL > 0 && (options.TTL == 0 || options.DegradedTTL < options.TTL) {
		c.degradedTTL = options.DegradedTTL
	}

	return c
}

// Get returns the verdict cached for url.
func (c *Cache) Get(url string) (domain.Verdict, bool) {
	e, ok := c.lru.Get(url)
	if !ok {
		return domain.Verdict{}, false
	}
	if c.expired(e) {
		c.mu.Lock()
		defer c.mu.Unlock()
		// it may have been replaced since
		if current, ok := c.lru.Peek(url); ok && c.expired(current) {
			c.lru.Remove(url)
		}

		return domain.Verdict{}, false
	}

	return e.verdict.Clone(), true
}

// Put caches v for url.
func (c *Cache) Put(url string, v domain.Verdict) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{verdict: v.Clone()}
	if c.degradedTTL > 0 && len(v.Details.Unavailable) > 0 {
		e.expires = c.now().Add(c.degradedTTL)
	}
	c.lru.Add(url, e)
}

func (c *Cache) expired(e entry) bool {
	return !e.expires.IsZero() && !c.now().Before(e.expires)
}

// Update applies fn to the verdict cached for url and stores the result when
// fn reports a change. It returns false without calling fn when url is not
// cached, which is the case once the entry was evicted or expired.
func (c *Cache) Update(url string, fn func(domain.Verdict) (domain.Verdict, bool)) (domain.Verdict, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Peek(url)
	if !ok || c.expired(e) {
		return domain.Verdict{}, false
	}
	updated, changed := fn(e.verdict.Clone())
	if !changed {
		return e.verdict.Clone(), false
	}
	c.lru.Add(url, entry{verdict: updated.Clone(), expires: e.expires})

	return updated, true
}

// RemoveDomain drops every cached URL whose domain is d or a subdomain of d.
// It returns the number of removed entries.
func (c *Cache) RemoveDomain(d string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, url := range c.lru.Keys() {
		host := hostname.Normalize(url)
		if host == d || hostname.IsSubdomain(host, d) {
			if c.lru.Remove(url) {
				removed++
			}
		}
	}

	return removed
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int { return c.lru.Len() }
