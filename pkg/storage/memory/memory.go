// Package memory is a process-local storage backend used by one-shot commands
// and tests. Transactions are serialized; their writes are buffered and
// applied on Commit, so reads inside a transaction do not observe its own
// writes.
package memory

import (
	"context"
	"errors"
	"maps"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"slices"
	"sync"
	"time"

	"github.com/riverqueue/river"
)

var errTxDone = errors.New("transaction already committed or rolled back")

type state struct {
	blacklist   map[string]string
	allowlist   map[string]struct{}
	refreshedAt time.Time
	verdicts    map[string]domain.VerdictSnapshot
	cookies     map[string]domain.CookieSnapshot
	prefs       map[domain.ClientID]domain.Preferences
}

// Memory implements storage.Storage and storage.TxStorage.
type Memory struct {
	// mu guards st.
	mu *sync.RWMutex
	// txMu is held for the lifetime of a transaction.
	txMu *sync.Mutex
	st   *state

	// pending is non-nil inside a transaction.
	pending *[]func(*state)
	done    bool
}

// New creates an empty storage.
func New() *Memory {
	return &Memory{
		mu:   &sync.RWMutex{},
		txMu: &sync.Mutex{},
		st: &state{
			blacklist: make(map[string]string),
			allowlist: make(map[string]struct{}),
			verdicts:  make(map[string]domain.VerdictSnapshot),
			cookies:   make(map[string]domain.CookieSnapshot),
			prefs:     make(map[domain.ClientID]domain.Preferences),
		},
	}
}

func (m *Memory) write(fn func(*state)) error {
	if m.pending != nil {
		if m.done {
			return errTxDone
		}
		*m.pending = append(*m.pending, fn)

		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.st)

	return nil
}

func (m *Memory) read(fn func(*state)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.st)
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Begin starts a transaction. It blocks while another transaction is open.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.pending != nil {
		return nil, storage.ErrAlreadyInTx
	}

	m.txMu.Lock()

	return &Memory{
		mu:      m.mu,
		txMu:    m.txMu,
		st:      m.st,
		pending: &[]func(*state){},
	}, nil
}

// Commit applies the buffered writes.
func (m *Memory) Commit() error {
	if m.pending == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return errTxDone
	}

	m.mu.Lock()
	for _, fn := range *m.pending {
		fn(m.st)
	}
	m.mu.Unlock()

	m.done = true
	m.txMu.Unlock()

	return nil
}

// Rollback discards the buffered writes.
func (m *Memory) Rollback() error {
	if m.pending == nil {
		return storage.ErrNotInTx
	}
	if m.done {
		return errTxDone
	}

	m.done = true
	m.txMu.Unlock()

	return nil
}

// WithTx runs cb in a transaction, committing when it returns nil.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// AddJob always fails: there is no job queue in memory.
func (m *Memory) AddJob(context.Context, river.JobArgs, *river.InsertOpts) (bool, error) {
	return false, storage.ErrJobsUnsupported
}

// Blacklist returns the stored domains in lexical order.
func (m *Memory) Blacklist(_ context.Context) (*storage.BlacklistSnapshot, error) {
	var out storage.BlacklistSnapshot
	m.read(func(s *state) {
		out.Domains = slices.Sorted(maps.Keys(s.blacklist))
		out.Allowlist = slices.Sorted(maps.Keys(s.allowlist))
		out.RefreshedAt = s.refreshedAt
	})

	return &out, nil
}

// AddBlacklistEntries stores new domains.
func (m *Memory) AddBlacklistEntries(_ context.Context, source string, domains ...string) (int, error) {
	fresh := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	m.read(func(s *state) {
		for _, d := range domains {
			if _, ok := s.blacklist[d]; ok {
				continue
			}
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			fresh = append(fresh, d)
		}
	})

	err := m.write(func(s *state) {
		for _, d := range fresh {
			if _, ok := s.blacklist[d]; !ok {
				s.blacklist[d] = source
			}
		}
	})

	return len(fresh), err
}

// AddAllowlistEntries stores allowlisted domains.
func (m *Memory) AddAllowlistEntries(_ context.Context, domains ...string) error {
	domains = slices.Clone(domains)

	return m.write(func(s *state) {
		for _, d := range domains {
			s.allowlist[d] = struct{}{}
		}
	})
}

// SetBlacklistRefreshedAt records a feed refresh.
func (m *Memory) SetBlacklistRefreshedAt(_ context.Context, at time.Time) error {
	return m.write(func(s *state) { s.refreshedAt = at })
}

// SaveVerdictSnapshot stores snapshot under its context. Outside a
// transaction it waits for any open transaction, which may hold the snapshot
// through LockVerdictSnapshot.
func (m *Memory) SaveVerdictSnapshot(_ context.Context, snapshot domain.VerdictSnapshot) error {
	snapshot.Verdict = snapshot.Verdict.Clone()
	if m.pending == nil {
		m.txMu.Lock()
		defer m.txMu.Unlock()
	}

	return m.write(func(s *state) { s.verdicts[snapshot.ContextID] = snapshot })
}

// VerdictSnapshot returns the snapshot of contextID.
func (m *Memory) VerdictSnapshot(_ context.Context, contextID string) (*domain.VerdictSnapshot, error) {
	var out *domain.VerdictSnapshot
	m.read(func(s *state) {
		if snapshot, ok := s.verdicts[contextID]; ok {
			snapshot.Verdict = snapshot.Verdict.Clone()
			out = &snapshot
		}
	})

	return out, nil
}

// LockVerdictSnapshot returns the snapshot of contextID. The surrounding
// transaction excludes every other transaction and every non-transactional
// snapshot write until it ends.
func (m *Memory) LockVerdictSnapshot(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error) {
	if m.pending == nil {
		return nil, storage.ErrNotInTx
	}

	return m.VerdictSnapshot(ctx, contextID)
}

// SaveCookieSnapshot stores the cookie snapshot of contextID.
func (m *Memory) SaveCookieSnapshot(_ context.Context, contextID string, snapshot domain.CookieSnapshot) error {
	return m.write(func(s *state) { s.cookies[contextID] = snapshot })
}

// CookieSnapshot returns the cookie snapshot of contextID.
func (m *Memory) CookieSnapshot(_ context.Context, contextID string) (*domain.CookieSnapshot, error) {
	var out *domain.CookieSnapshot
	m.read(func(s *state) {
		if snapshot, ok := s.cookies[contextID]; ok {
			out = &snapshot
		}
	})

	return out, nil
}

// Preferences returns the preferences of clientID.
func (m *Memory) Preferences(_ context.Context, clientID domain.ClientID) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	m.read(func(s *state) {
		if p, ok := s.prefs[clientID]; ok {
			prefs = p
		}
	})

	return prefs, nil
}

// SavePreferences stores the preferences of clientID.
func (m *Memory) SavePreferences(_ context.Context, clientID domain.ClientID, prefs domain.Preferences) error {
	return m.write(func(s *state) { s.prefs[clientID] = prefs })
}

var (
	_ storage.Storage   = (*Memory)(nil)
	_ storage.TxStorage = (*Memory)(nil)
)
