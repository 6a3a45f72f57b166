package blacklist

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"phishguard/internal/config"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"phishguard/pkg/storage"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Options configure feed refreshes.
type Options struct {
	// FeedURL is a newline-delimited feed of phishing domains or URLs.
	FeedURL string
	// Interval is the period between refreshes made by Run.
	Interval time.Duration
	// Timeout bounds a single download attempt.
	Timeout time.Duration
	// Retries is the number of retries after a transient failure.
	Retries uint64
	// RetryBase is the first backoff delay, doubled on every retry.
	RetryBase time.Duration
	// MaxBytes rejects larger feeds.
	MaxBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FeedURL:   cfg.Blacklist.FeedURL,
		Interval:  cfg.Blacklist.RefreshInterval,
		Timeout:   cfg.Blacklist.FetchTimeout,
		Retries:   cfg.Blacklist.FetchRetries,
		RetryBase: time.Second,
		MaxBytes:  cfg.Blacklist.MaxFeedBytes,
	}
}

// Result describes a completed refresh.
type Result struct {
	// Fetched is the number of distinct domains in the feed.
	Fetched int `json:"fetched"`
	// Added is the number of domains that were not blacklisted before.
	Added int `json:"added"`
	// Skipped is the number of feed lines that were not valid domains.
	Skipped int `json:"skipped"`
	// NotModified is set when the feed did not change since the last refresh.
	NotModified bool      `json:"notModified"`
	RefreshedAt time.Time `json:"refreshedAt"`
	Size        int       `json:"size"`
}

// Refresher unions a remote feed into a Store.
type Refresher struct {
	options Options
	client  *http.Client
	store   *Store
	storage storage.BlacklistStorage

	// mu allows one refresh at a time and guards etag.
	mu   sync.Mutex
	etag string
	now  func() time.Time
}

// NewRefresher creates a Refresher downloading with client.
func NewRefresher(client *http.Client, store *Store, strg storage.BlacklistStorage, options Options) *Refresher {
	return &Refresher{
		options: options,
		client:  client,
		store:   store,
		storage: strg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type feed struct {
	parsed      ParseResult
	etag        string
	notModified bool
}

// Refresh downloads the feed and unions it into the store. Transient
// failures are retried with exponential backoff. Errors are ErrFetch,
// ErrParse or ErrTimeout; a feed still throttling after the last retry also
// matches ErrRateLimited. The store is left untouched on failure.
func (r *Refresher) Refresh(ctx context.Context) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx = logger.WithFields(ctx, zap.String("feed", r.options.FeedURL))

	var f feed
	backoff := retry.WithMaxRetries(r.options.Retries, retry.NewExponential(r.options.RetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var (
			transient bool
			err       error
		)
		f, transient, err = r.fetch(ctx)
		if err != nil && transient {
			logger.Warn(ctx, "could not fetch blacklist feed, retrying", zap.Error(err))

			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return Result{}, serrors.FromContext(err, "blacklist refresh timed out")
	}

	res := Result{NotModified: f.notModified}
	if !f.notModified {
		res.Fetched = len(f.parsed.Domains)
		res.Skipped = f.parsed.Skipped
		res.Added, err = r.store.Add(ctx, storage.SourceFeed, f.parsed.Domains...)
		if err != nil {
			return Result{}, err
		}
		r.etag = f.etag
	}

	res.RefreshedAt = r.now()
	res.Size = r.store.Size()
	if err := r.storage.SetBlacklistRefreshedAt(ctx, res.RefreshedAt); err != nil {
		return res, fmt.Errorf("could not store blacklist refresh time: %w", err)
	}

	logger.Info(ctx, "blacklist refreshed",
		zap.Int("fetched", res.Fetched),
		zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped),
		zap.Int("size", res.Size),
		zap.Bool("notModified", res.NotModified))

	return res, nil
}

// fetch downloads and parses the feed once. transient reports whether the
// failure is worth retrying.
func (r *Refresher) fetch(ctx context.Context) (f feed, transient bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, r.options.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.options.FeedURL, nil)
	if err != nil {
		return f, false, serrors.Wrap(serrors.ErrFetch, err, "invalid feed URL")
	}
	req.Header.Set("User-Agent", "phishguard")
	if r.etag != "" {
		req.Header.Set("If-None-Match", r.etag)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return f, true, serrors.Wrap(serrors.ErrTimeout, err, "feed download timed out")
		}

		return f, true, serrors.Wrap(serrors.ErrFetch, err, "could not download feed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return feed{notModified: true, etag: r.etag}, false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return f, true, serrors.Wrap(serrors.ErrRateLimited, serrors.KindOnly(serrors.ErrFetch), "feed answered %s", resp.Status)
	case resp.StatusCode >= http.StatusInternalServerError:
		return f, true, serrors.With(serrors.ErrFetch, "feed answered %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return f, false, serrors.With(serrors.ErrFetch, "feed answered %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.options.MaxBytes+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return f, true, serrors.Wrap(serrors.ErrTimeout, err, "feed download timed out")
		}

		return f, true, serrors.Wrap(serrors.ErrFetch, err, "could not read feed")
	}
	if int64(len(body)) > r.options.MaxBytes {
		return f, false, serrors.With(serrors.ErrParse, "feed exceeds %d bytes", r.options.MaxBytes)
	}

	parsed, err := Parse(bytes.NewReader(body))
	if err != nil {
		return f, false, err
	}

	return feed{parsed: parsed, etag: resp.Header.Get("ETag")}, false, nil
}

// Run refreshes immediately and then every Interval until ctx is done.
// Failures are logged and the previous set is kept.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.options.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "could not refresh blacklist", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
