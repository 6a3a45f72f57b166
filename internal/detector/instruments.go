package detector

import (
	"context"
	"fmt"
	"phishguard/internal/blacklist"
	"phishguard/pkg/domain"
	"phishguard/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Check outcomes, by the pipeline state that produced the verdict.
const (
	outcomeCache        = "cache"
	outcomeAllowlist    = "allowlist"
	outcomeBlacklist    = "blacklist"
	outcomeScored       = "scored"
	outcomeUndetermined = "undetermined"
)

type instruments struct {
	checks   metric.Int64Counter
	duration metric.Float64Histogram
	failures metric.Int64Counter
	merges   metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider, store *blacklist.Store) (*instruments, error) {
	meter := mp.Meter("phishguard/internal/detector")

	checks, err := meter.Int64Counter("phishguard.checks",
		metric.WithDescription("URL checks by outcome and classification"))
	if err != nil {
		return nil, fmt.Errorf("could not create checks counter: %w", err)
	}
	duration, err := meter.Float64Histogram("phishguard.check.duration",
		metric.WithDescription("URL check latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}
	failures, err := meter.Int64Counter("phishguard.signal.failures",
		metric.WithDescription("Scorer failures degraded to a zero signal"))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}
	merges, err := meter.Int64Counter("phishguard.cookie.merges",
		metric.WithDescription("Cookie assessments merged into verdicts"))
	if err != nil {
		return nil, fmt.Errorf("could not create merges counter: %w", err)
	}
	if _, err := meter.Int64ObservableGauge("phishguard.blacklist.size",
		metric.WithDescription("Number of blacklisted domains"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(int64(store.Size()))

			return nil
		})); err != nil {
		return nil, fmt.Errorf("could not create blacklist size gauge: %w", err)
	}

	return &instruments{
		checks:   checks,
		duration: duration,
		failures: failures,
		merges:   merges,
	}, nil
}

func (i *instruments) checked(ctx context.Context, outcome string, v domain.Verdict, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("classification", string(v.Classification)),
	)
	i.checks.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (i *instruments) failed(ctx context.Context, signal string) {
	i.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("signal", signal)))
}

func (i *instruments) merged(ctx context.Context, escalated bool) {
	i.merges.Add(ctx, 1, metric.WithAttributes(attribute.Bool("escalated", escalated)))
}
