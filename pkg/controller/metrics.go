package controller

import (
	"fmt"
	"net/http"
	"phishguard/pkg/metrics"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the number and latency of
// requests per route, method and status.
func WithMetrics(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	meter := mp.Meter("phishguard/pkg/controller")

	requests, err := meter.Int64Counter("phishguard.http.requests",
		metric.WithDescription("HTTP requests by route and status"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("phishguard.http.duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("route", routePattern(r)),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
