package detector

import (
	"context"
	"errors"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MergeFunc performs a cookie merge.
type MergeFunc func(ctx context.Context, contextID string, url string) error

// TimerScheduler runs merges on in-process timers. Pending merges are lost
// when the process exits; the job queue scheduler is used where that matters.
type TimerScheduler struct {
	merge MergeFunc

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
	wg      sync.WaitGroup
}

// NewTimerScheduler creates a scheduler calling merge.
func NewTimerScheduler(merge MergeFunc) *TimerScheduler {
	return &TimerScheduler{
		merge:  merge,
		timers: make(map[*time.Timer]struct{}),
	}
}

// ScheduleCookieMerge calls merge after delay. The merge runs detached from
// ctx cancellation but keeps its logger.
func (s *TimerScheduler) ScheduleCookieMerge(ctx context.Context, contextID string, url string, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return serrors.With(serrors.ErrUnavailable, "scheduler stopped")
	}

	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		delete(s.timers, t)
		s.mu.Unlock()

		err := s.merge(ctx, contextID, url)
		switch {
		case err == nil:
		case errors.Is(err, serrors.ErrScriptingUnavailable):
			logger.Debug(ctx, "no cookie telemetry for context", zap.Error(err))
		default:
			logger.Warn(ctx, "cookie merge failed", zap.Error(err))
		}
	})
	s.timers[t] = struct{}{}

	return nil
}

// Stop cancels pending merges and waits for running ones.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for t := range s.timers {
		if t.Stop() {
			s.wg.Done()
		}
		delete(s.timers, t)
	}
	s.mu.Unlock()

	s.wg.Wait()
}
