// Package v1handler implements the v1 HTTP API on top of the detector.
// Bodies are encoded and decoded with go-faster/jx; errors carrying a
// serrors kind are mapped to HTTP statuses.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"phishguard/internal/detector"
	"phishguard/pkg/logger"
	"phishguard/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Deps are the collaborators of the handlers.
type Deps struct {
	Detector detector.Detector
	// AllowedOrigins restricts websocket upgrades.
	AllowedOrigins []string
	// RequestTimeout bounds every request but the event stream. Zero disables it.
	RequestTimeout time.Duration
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts the v1 endpoints on r.
func (h Handler) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.deps.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.deps.RequestTimeout))
		}

		r.Post("/checks", h.CheckURL)
		r.Get("/contexts/{id}/verdict", h.ContextVerdict)
		r.Post("/contexts/{id}/cookies", h.RecordCookies)
		r.Post("/reports/phishing", h.ReportPhishing)
		r.Post("/reports/false-positive", h.ReportFalsePositive)
		r.Post("/blacklist/refresh", h.RefreshBlacklist)
		r.Get("/preferences", h.GetPreferences)
		r.Put("/preferences", h.SavePreferences)
	})
	r.Get("/events", h.Events)
}

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// ErrorResponse is an Error with its HTTP status.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:           {http.StatusBadRequest, "bad request"},
	serrors.ErrParse:                {http.StatusBadRequest, "malformed input"},
	serrors.ErrUnauthorized:         {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:            {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:             {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:             {http.StatusConflict, "conflict"},
	serrors.ErrScriptingUnavailable: {http.StatusUnprocessableEntity, "cookie telemetry unavailable"},
	serrors.ErrRateLimited:          {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrFetch:                {http.StatusBadGateway, "upstream unavailable"},
	serrors.ErrUnavailable:          {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:              {http.StatusGatewayTimeout, "timed out"},
}

// NewError maps err to a response. Internal errors never leak their message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	var (
		kind    serrors.Kind
		message string
	)
	var semantic *serrors.Error
	switch {
	case errors.As(err, &semantic):
		kind = semantic.Kind()
		message = semantic.Message()
	case errors.As(err, &kind):
	}

	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", zap.Error(err))
	}
	if message == "" {
		message = ks.message
	}

	return &ErrorResponse{
		StatusCode: ks.status,
		Response:   Error{Code: kind.Error(), Message: message},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
