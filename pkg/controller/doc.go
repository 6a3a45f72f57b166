// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request counts and latency per route.
//
// Provided helpers:
//   - OriginAllowed: Matches an Origin header against the configured origins.
//   - PprofHandler: Returns a handler exposing net/http/pprof under /debug/pprof/.
package controller
