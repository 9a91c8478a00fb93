package main

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/grindlemire/tuix"
	"github.com/grindlemire/tuix/internal/metrics"
)

// newDebugHandler serves the draw metrics and the last committed frame
// while tuix run is showing a document.
func newDebugHandler(engine *tuix.Engine, obs *metrics.Observer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", obs.Handler())
	r.Get("/frame", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, engine.Frame())
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}
