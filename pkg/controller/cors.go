package controller

import (
	"net/http"
	"slices"
	"strings"
)

const anyOrigin = "*"

// OriginAllowed reports whether origin may call the API. Requests without an
// Origin header come from non-browser clients and are always allowed.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}

	return slices.ContainsFunc(allowed, func(a string) bool {
		return a == anyOrigin || strings.EqualFold(strings.TrimSuffix(a, "/"), origin)
	})
}

// WithCORS returns a middleware that sets CORS headers for allowed origins
// and short-circuits OPTIONS preflight requests with 204 No Content.
// Browser extensions call the API from chrome-extension://<id> origins.
func WithCORS(allowed []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowed, anyOrigin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			switch {
			case wildcard:
				h.Set("Access-Control-Allow-Origin", anyOrigin)
			case origin != "" && OriginAllowed(allowed, origin):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-Id")
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
