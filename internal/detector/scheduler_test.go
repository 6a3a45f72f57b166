package detector_test

import (
	"context"
	"phishguard/internal/detector"
	"phishguard/pkg/serrors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerScheduler_RunsAfterDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	type call struct {
		contextID, url string
		err            error
	}
	calls := make(chan call, 1)
	s := detector.NewTimerScheduler(func(ctx context.Context, contextID, url string) error {
		calls <- call{contextID, url, ctx.Err()}

		return nil
	})
	defer s.Stop()

	require.NoError(t, s.ScheduleCookieMerge(ctx, tab, safeURL, 10*time.Millisecond))
	// merges outlive the request that scheduled them
	cancel()

	select {
	case c := <-calls:
		require.Equal(t, call{tab, safeURL, nil}, c)
	case <-time.After(2 * time.Second):
		t.Fatal("merge did not run")
	}
}

func TestTimerScheduler_Stop(t *testing.T) {
	var runs atomic.Int32
	s := detector.NewTimerScheduler(func(context.Context, string, string) error {
		runs.Add(1)

		return serrors.With(serrors.ErrScriptingUnavailable, "no telemetry")
	})

	require.NoError(t, s.ScheduleCookieMerge(context.Background(), tab, safeURL, time.Hour))
	s.Stop()

	require.Zero(t, runs.Load())
	err := s.ScheduleCookieMerge(context.Background(), tab, safeURL, time.Millisecond)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
