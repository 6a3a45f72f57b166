package v1handler

import (
	"context"
	"net/http"
	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// CheckURL returns the verdict for the URL in the body.
func (h Handler) CheckURL(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		return decodeCheckRequest(d, key, &req)
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	v, err := h.deps.Detector.CheckURL(r.Context(), req.URL, req.ContextID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeVerdict(e, v) })
}

// ContextVerdict returns the latest verdict delivered to a display context.
func (h Handler) ContextVerdict(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.deps.Detector.ContextVerdict(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeVerdictSnapshot(e, snapshot) })
}

// RecordCookies stores cookie telemetry of a display context. The body
// carries either counts or the individual cookies.
func (h Handler) RecordCookies(w http.ResponseWriter, r *http.Request) {
	contextID := strings.TrimSpace(chi.URLParam(r, "id"))
	var req cookieRequest
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		return decodeCookieRequest(d, key, &req)
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	var err error
	if req.Individual {
		if req.Snapshot.URL == "" {
			err = serrors.With(serrors.ErrBadRequest, "url is required")
		} else {
			err = h.deps.Detector.RecordCookies(r.Context(), contextID, req.Snapshot.URL, req.Cookies)
		}
	} else {
		err = h.deps.Detector.RecordCookieSnapshot(r.Context(), contextID, req.Snapshot)
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// ReportPhishing blacklists the domain of the URL in the body.
func (h Handler) ReportPhishing(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.deps.Detector.ReportPhishing)
}

// ReportFalsePositive allowlists the domain of the URL in the body.
func (h Handler) ReportFalsePositive(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, h.deps.Detector.ReportFalsePositive)
}

func (h Handler) report(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, rawURL string) error) {
	var req reportRequest
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		return decodeReportRequest(d, key, &req)
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := fn(r.Context(), req.URL); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefreshBlacklist refreshes the blacklist from its feed.
func (h Handler) RefreshBlacklist(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Detector.RefreshBlacklist(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRefreshResult(e, res) })
}

// GetPreferences returns the flags of the calling client.
func (h Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.deps.Detector.Preferences(r.Context(), GetClientIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePreferences(e, prefs) })
}

// SavePreferences replaces the flags of the calling client. Omitted flags
// are stored as false.
func (h Handler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := decodeBody(w, r, func(d *jx.Decoder, key string) error {
		return decodePreferences(d, key, &prefs)
	}); err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Detector.SavePreferences(r.Context(), GetClientIDFromContext(r.Context()), prefs); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodePreferences(e, prefs) })
}
