// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the phishing detection service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"phishguard/internal/api/handler/v1handler"
	"phishguard/internal/config"
	"phishguard/internal/detector"
	"phishguard/pkg/controller"
	"phishguard/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer authentication of v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds every v1 request except the event stream.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the origins accepted by CORS and websocket upgrades.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Deps are the collaborators served by the API.
type Deps struct {
	Detector detector.Detector
	// MeterProvider records HTTP metrics. A provider exported through the
	// default Prometheus registry is created when nil.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind bearer authentication
// - pprof endpoints for profiling
// It also wraps the router with logging, CORS and metrics middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mp := deps.MeterProvider
	if mp == nil {
		var err error
		if mp, err = metrics.NewMeterProvider(prometheus.DefaultRegisterer); err != nil {
			return nil, err
		}
	}
	withMetrics, err := controller.WithMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	handler := v1handler.New(v1handler.Deps{
		Detector:       deps.Detector,
		AllowedOrigins: opts.AllowedOrigins,
		RequestTimeout: opts.RequestTimeout,
	})

	r := chi.NewRouter()
	r.Use(controller.WithLogger, controller.WithCORS(opts.AllowedOrigins), withMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"PhishGuard",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	r.Route("/v1", func(r chi.Router) {
		r.Use(secHandler.Middleware(*handler))
		handler.Routes(r)
	})

	// pprof
	r.Mount(controller.PprofPrefix, controller.PprofHandler())

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           r,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
