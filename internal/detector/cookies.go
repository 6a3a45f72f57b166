package detector

import (
	"context"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"phishguard/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

func (d *detector) RecordCookieSnapshot(ctx context.Context, contextID string, snapshot domain.CookieSnapshot) error {
	if contextID == "" {
		return serrors.With(serrors.ErrBadRequest, "context id is required")
	}
	if strings.TrimSpace(snapshot.URL) == "" {
		return serrors.With(serrors.ErrBadRequest, "url is required")
	}
	if snapshot.CookieCount < 0 || snapshot.HTTPOnlyCookies < 0 ||
		snapshot.SecureCookies < 0 || snapshot.TrackingCookies < 0 {
		return serrors.With(serrors.ErrBadRequest, "cookie counts must not be negative")
	}
	if snapshot.RecordedAt.IsZero() {
		snapshot.RecordedAt = d.now()
	}

	if err := d.deps.Storage.SaveCookieSnapshot(ctx, contextID, snapshot); err != nil {
		return fmt.Errorf("could not save cookie snapshot: %w", err)
	}

	return nil
}

func (d *detector) RecordCookies(ctx context.Context, contextID string, url string, cookies []domain.Cookie) error {
	return d.RecordCookieSnapshot(ctx, contextID, d.deps.Cookies.Summarize(url, cookies))
}

// MergeCookies scores the cookie telemetry recorded for contextID and merges
// it into the cached verdict of url. The merge happens at most once per
// verdict; the context snapshot is updated in the same transaction that
// locks it.
func (d *detector) MergeCookies(ctx context.Context, contextID string, url string) (*domain.Verdict, error) {
	ctx = logger.WithFields(ctx, zap.String("url", url), zap.String("contextID", contextID))
	ctx, span := d.tracer.Start(ctx, "MergeCookies")
	defer span.End()

	snapshot, err := d.deps.Storage.CookieSnapshot(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("could not get cookie snapshot: %w", err)
	}
	if snapshot == nil || snapshot.URL != url {
		return nil, serrors.With(serrors.ErrScriptingUnavailable, "no cookie telemetry recorded for url")
	}

	assessment := d.deps.Cookies.Score(*snapshot)
	var previous domain.Verdict
	merged, ok := d.deps.Cache.Update(url, func(v domain.Verdict) (domain.Verdict, bool) {
		previous = v

		return d.deps.Policy.MergeCookie(v, assessment)
	})
	if !ok {
		logger.Debug(ctx, "cookie assessment not merged", zap.Float64("cookieScore", assessment.Score))

		return nil, nil
	}

	escalated := !previous.IsPhishing && merged.IsPhishing
	d.instruments.merged(ctx, escalated)
	logger.Info(ctx, "cookie assessment merged",
		zap.Float64("cookieScore", assessment.Score),
		zap.Float64("score", merged.Score),
		zap.Bool("escalated", escalated))

	if !d.navigation.current(contextID, url) {
		return &merged, nil
	}

	err = d.deps.Storage.WithTx(ctx, func(strg storage.AllStorage) error {
		current, err := strg.LockVerdictSnapshot(ctx, contextID)
		if err != nil {
			return err
		}
		if current != nil && current.URL != url {
			return nil
		}

		return strg.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{
			ContextID: contextID,
			URL:       url,
			Verdict:   merged,
			UpdatedAt: d.now(),
		})
	})
	if err != nil {
		logger.Warn(ctx, "could not update verdict snapshot", zap.Error(err))
	}

	d.events.publish(ctx, domain.Event{
		Type:      domain.EventVerdictUpdated,
		URL:       url,
		ContextID: contextID,
		Verdict:   merged,
		Escalated: escalated,
		Alert:     d.deps.Policy.Alert(merged),
		At:        d.now(),
	})

	return &merged, nil
}
