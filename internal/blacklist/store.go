// Package blacklist keeps the set of known phishing domains and the
// allowlist of domains reported as false positives.
package blacklist

import (
	"context"
	"fmt"
	"maps"
	"phishguard/pkg/hostname"
	"phishguard/pkg/storage"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gobwas/glob"
)

type domainSet map[string]struct{}

type allowlist struct {
	exact    domainSet
	patterns []glob.Glob
}

func (a *allowlist) match(domain string) bool {
	if _, ok := a.exact[domain]; ok {
		return true
	}
	for _, g := range a.patterns {
		if g.Match(domain) {
			return true
		}
	}

	return false
}

// Store is safe for concurrent use. Readers see either the set before or
// after a write, never a partially updated one: writers build a new set and
// swap it in.
type Store struct {
	// mu serializes writers.
	mu      sync.Mutex
	blocked atomic.Pointer[domainSet]
	allowed atomic.Pointer[allowlist]

	// patterns are the configured allowlist globs, kept across reloads.
	patterns []glob.Glob
	storage  storage.BlacklistStorage
}

// NewStore creates an empty store persisting through strg. allow holds
// domains and glob patterns (*.example.com) that are never blacklisted.
func NewStore(strg storage.BlacklistStorage, allow []string) (*Store, error) {
	s := &Store{storage: strg}

	exact := make(domainSet)
	for _, entry := range allow {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if !strings.ContainsAny(entry, "*?[{") {
			exact[hostname.Canonical(entry)] = struct{}{}

			continue
		}
		g, err := glob.Compile(entry, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid allowlist pattern %q: %w", entry, err)
		}
		s.patterns = append(s.patterns, g)
	}

	s.blocked.Store(&domainSet{})
	s.allowed.Store(&allowlist{exact: exact, patterns: s.patterns})

	return s, nil
}

// Load replaces the in-memory sets with the persisted ones.
func (s *Store) Load(ctx context.Context) error {
	snapshot, err := s.storage.Blacklist(ctx)
	if err != nil {
		return fmt.Errorf("could not load blacklist: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blocked := make(domainSet, len(snapshot.Domains))
	for _, d := range snapshot.Domains {
		blocked[d] = struct{}{}
	}
	current := s.allowed.Load()
	exact := maps.Clone(current.exact)
	for _, d := range snapshot.Allowlist {
		exact[d] = struct{}{}
	}

	s.blocked.Store(&blocked)
	s.allowed.Store(&allowlist{exact: exact, patterns: s.patterns})

	return nil
}

// Contains reports whether domain or one of its parents down to the
// registrable domain is blacklisted. Allowlisted domains never match.
func (s *Store) Contains(domain string) bool {
	if s.Allowed(domain) {
		return false
	}

	blocked := *s.blocked.Load()
	for _, d := range hostname.Parents(domain) {
		if _, ok := blocked[d]; ok {
			return true
		}
	}

	return false
}

// Allowed reports whether domain was reported as a false positive or
// matches a configured allowlist pattern.
func (s *Store) Allowed(domain string) bool {
	return s.allowed.Load().match(domain)
}

// Add persists and blacklists domains, which may be URLs or bare domains.
// It returns the number of domains that were not blacklisted before.
func (s *Store) Add(ctx context.Context, source string, domains ...string) (int, error) {
	canonical := canonicalize(domains)
	if len(canonical) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.storage.AddBlacklistEntries(ctx, source, canonical...); err != nil {
		return 0, fmt.Errorf("could not persist blacklist entries: %w", err)
	}

	current := *s.blocked.Load()
	next := make(domainSet, len(current)+len(canonical))
	maps.Copy(next, current)
	added := 0
	for _, d := range canonical {
		if _, ok := next[d]; !ok {
			next[d] = struct{}{}
			added++
		}
	}
	s.blocked.Store(&next)

	return added, nil
}

// Allow persists and allowlists domains.
func (s *Store) Allow(ctx context.Context, domains ...string) error {
	canonical := canonicalize(domains)
	if len(canonical) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.AddAllowlistEntries(ctx, canonical...); err != nil {
		return fmt.Errorf("could not persist allowlist entries: %w", err)
	}

	current := s.allowed.Load()
	exact := maps.Clone(current.exact)
	for _, d := range canonical {
		exact[d] = struct{}{}
	}
	s.allowed.Store(&allowlist{exact: exact, patterns: s.patterns})

	return nil
}

// Size returns the number of blacklisted domains.
func (s *Store) Size() int { return len(*s.blocked.Load()) }

func canonicalize(domains []string) []string {
	out := make([]string, 0, len(domains))
	seen := make(domainSet, len(domains))
	for _, d := range domains {
		d = hostname.Canonical(d)
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out
}
