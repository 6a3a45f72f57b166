package detector

import (
	"context"
	"fmt"
	"phishguard/internal/blacklist"
	"phishguard/internal/config"
	"phishguard/internal/resultcache"
	"phishguard/internal/scorer"
	"phishguard/internal/scorer/cookie"
	"phishguard/internal/scoring"
	"phishguard/pkg/domain"
	"phishguard/pkg/hostname"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"phishguard/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "phishguard/internal/detector"

// Options configure the check pipeline.
type Options struct {
	// SignalTimeout bounds the network-backed scorers of a single check.
	SignalTimeout time.Duration
	// CookieSettleDelay is the delay between a verdict and its cookie merge.
	CookieSettleDelay time.Duration
	// SubscriberBuffer is the number of events buffered per subscriber.
	SubscriberBuffer int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SignalTimeout:     cfg.Detector.SignalTimeout,
		CookieSettleDelay: cfg.Detector.CookieSettleDelay,
		SubscriberBuffer:  cfg.Detector.SubscriberBuffer,
	}
}

// Deps are the collaborators of the detector.
type Deps struct {
	Storage   storage.Storage
	Cache     *resultcache.Cache
	Blacklist *blacklist.Store
	// Refresher is optional; RefreshBlacklist fails without it.
	Refresher *blacklist.Refresher

	Lexical     scorer.Scorer
	Certificate scorer.Scorer
	ML          scorer.Scorer
	Cookies     *cookie.Scorer
	Policy      scoring.Policy

	// Scheduler runs cookie merges. In-process timers are used when nil.
	Scheduler Scheduler
	// MeterProvider defaults to the global provider.
	MeterProvider metric.MeterProvider
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type detector struct {
	deps    Deps
	options Options

	scheduler   Scheduler
	events      *hub
	navigation  *tracker
	instruments *instruments
	tracer      trace.Tracer
	now         func() time.Time
}

// New creates a Detector.
func New(deps Deps, options Options) (Detector, error) {
	if err := deps.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring policy: %w", err)
	}

	mp := deps.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	inst, err := newInstruments(mp, deps.Blacklist)
	if err != nil {
		return nil, err
	}

	d := &detector{
		deps:        deps,
		options:     options,
		events:      newHub(options.SubscriberBuffer),
		navigation:  newTracker(),
		instruments: inst,
		tracer:      tp.Tracer(tracerName),
		now:         func() time.Time { return time.Now().UTC() },
	}
	d.scheduler = deps.Scheduler
	if d.scheduler == nil {
		d.scheduler = NewTimerScheduler(func(ctx context.Context, contextID, url string) error {
			_, err := d.MergeCookies(ctx, contextID, url)

			return err
		})
	}

	return d, nil
}

// CheckURL runs the pipeline: CacheCheck, ListCheck, Scoring, Aggregated.
func (d *detector) CheckURL(ctx context.Context, rawURL string, contextID string) (domain.Verdict, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return domain.Verdict{}, serrors.With(serrors.ErrBadRequest, "url is required")
	}

	start := time.Now()
	host := hostname.Normalize(rawURL)
	ctx = logger.WithFields(ctx,
		zap.String("url", rawURL),
		zap.String("domain", host),
		zap.String("contextID", contextID))
	ctx, span := d.tracer.Start(ctx, "CheckURL", trace.WithAttributes(
		attribute.String("url.domain", host),
		attribute.String("phishguard.context_id", contextID)))
	defer span.End()

	d.navigation.navigate(contextID, rawURL)

	verdict, outcome := d.evaluate(ctx, rawURL, host)
	span.SetAttributes(
		attribute.String("phishguard.outcome", outcome),
		attribute.Float64("phishguard.score", verdict.Score))
	d.instruments.checked(ctx, outcome, verdict, time.Since(start))
	logger.Debug(ctx, "url checked",
		zap.String("outcome", outcome),
		zap.Float64("score", verdict.Score),
		zap.String("reason", verdict.Reason))

	d.deliver(ctx, domain.EventVerdict, contextID, rawURL, verdict, false)

	if outcome == outcomeScored && contextID != "" {
		if err := d.scheduler.ScheduleCookieMerge(ctx, contextID, rawURL, d.options.CookieSettleDelay); err != nil {
			logger.Warn(ctx, "could not schedule cookie merge", zap.Error(err))
		}
	}

	return verdict, nil
}

func (d *detector) evaluate(ctx context.Context, rawURL, host string) (domain.Verdict, string) {
	if v, ok := d.deps.Cache.Get(rawURL); ok {
		return v, outcomeCache
	}

	_, span := d.tracer.Start(ctx, "ListCheck")
	allowed := d.deps.Blacklist.Allowed(host)
	blocked := !allowed && d.deps.Blacklist.Contains(host)
	span.End()

	switch {
	case allowed:
		v := d.deps.Policy.Allowlisted()
		d.deps.Cache.Put(rawURL, v)

		return v, outcomeAllowlist
	case blocked:
		v := d.deps.Policy.Blacklisted()
		d.deps.Cache.Put(rawURL, v)

		return v, outcomeBlacklist
	}

	v := d.score(ctx, rawURL)
	if v.Source == domain.SourceUndetermined {
		return v, outcomeUndetermined
	}
	d.deps.Cache.Put(rawURL, v)

	return v, outcomeScored
}

// deliver persists the verdict as the context snapshot and publishes it,
// unless the context has navigated away from url.
func (d *detector) deliver(ctx context.Context,
	typ domain.EventType,
	contextID, url string,
	v domain.Verdict,
	escalated bool) {
	if contextID != "" {
		if !d.navigation.current(contextID, url) {
			logger.Debug(ctx, "context navigated away, dropping stale verdict")

			return
		}
		if err := d.deps.Storage.SaveVerdictSnapshot(ctx, domain.VerdictSnapshot{
			ContextID: contextID,
			URL:       url,
			Verdict:   v,
			UpdatedAt: d.now(),
		}); err != nil {
			logger.Warn(ctx, "could not save verdict snapshot", zap.Error(err))
		}
	}

	d.events.publish(ctx, domain.Event{
		Type:      typ,
		URL:       url,
		ContextID: contextID,
		Verdict:   v,
		Escalated: escalated,
		Alert:     d.deps.Policy.Alert(v),
		At:        d.now(),
	})
}

// ReportPhishing blacklists the domain of rawURL and purges its cached verdicts.
// Allowlisted domains are rejected with ErrConflict since the allowlist takes
// precedence over the blacklist.
func (d *detector) ReportPhishing(ctx context.Context, rawURL string) error {
	host := hostname.Canonical(rawURL)
	if host == "" {
		return serrors.With(serrors.ErrBadRequest, "url is required")
	}
	if d.deps.Blacklist.Allowed(host) {
		return serrors.With(serrors.ErrConflict, "domain %s is allowlisted", host)
	}

	if _, err := d.deps.Blacklist.Add(ctx, storage.SourceReport, host); err != nil {
		return fmt.Errorf("could not blacklist reported domain: %w", err)
	}
	removed := d.deps.Cache.RemoveDomain(host)
	logger.Info(ctx, "phishing reported", zap.String("domain", host), zap.Int("purged", removed))

	return nil
}

// ReportFalsePositive allowlists the domain of rawURL and purges its cached verdicts.
func (d *detector) ReportFalsePositive(ctx context.Context, rawURL string) error {
	host := hostname.Canonical(rawURL)
	if host == "" {
		return serrors.With(serrors.ErrBadRequest, "url is required")
	}

	if err := d.deps.Blacklist.Allow(ctx, host); err != nil {
		return fmt.Errorf("could not allowlist reported domain: %w", err)
	}
	removed := d.deps.Cache.RemoveDomain(host)
	logger.Info(ctx, "false positive reported", zap.String("domain", host), zap.Int("purged", removed))

	return nil
}

// RefreshBlacklist runs one feed refresh.
func (d *detector) RefreshBlacklist(ctx context.Context) (blacklist.Result, error) {
	if d.deps.Refresher == nil {
		return blacklist.Result{}, serrors.With(serrors.ErrUnavailable, "blacklist refresh is not configured")
	}

	return d.deps.Refresher.Refresh(ctx)
}

// ContextVerdict returns the latest verdict delivered to contextID.
func (d *detector) ContextVerdict(ctx context.Context, contextID string) (*domain.VerdictSnapshot, error) {
	snapshot, err := d.deps.Storage.VerdictSnapshot(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("could not get verdict snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no verdict for context")
	}

	return snapshot, nil
}

func (d *detector) Preferences(ctx context.Context, clientID domain.ClientID) (domain.Preferences, error) {
	prefs, err := d.deps.Storage.Preferences(ctx, clientID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("could not get preferences: %w", err)
	}

	return prefs, nil
}

func (d *detector) SavePreferences(ctx context.Context, clientID domain.ClientID, prefs domain.Preferences) error {
	if err := d.deps.Storage.SavePreferences(ctx, clientID, prefs); err != nil {
		return fmt.Errorf("could not save preferences: %w", err)
	}

	return nil
}

func (d *detector) Subscribe(contextID string) (<-chan domain.Event, func()) {
	return d.events.subscribe(contextID)
}
