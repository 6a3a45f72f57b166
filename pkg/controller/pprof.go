package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path PprofHandler serves under.
const PprofPrefix = "/debug/pprof/"

// PprofHandler returns a handler serving net/http/pprof under PprofPrefix.
// Named profiles (heap, goroutine, ...) are served by the index handler.
func PprofHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
