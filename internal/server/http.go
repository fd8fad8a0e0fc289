// Package server assembles the HTTP router and server.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"record-check-service/internal/abandon"
	"record-check-service/internal/check"
	healthhandler "record-check-service/internal/health/handler"
	"record-check-service/internal/obs"
)

// Deps holds the handlers the router serves.
type Deps struct {
	Check   *check.Handler
	Abandon *abandon.Handler
	Health  *healthhandler.Handler
}

// NewRouter builds the route table with tracing, metrics, and recovery
// middleware applied to every route.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(otelhttp.NewMiddleware("record-check-service"))
	r.Use(obs.Instrument)

	r.Post("/check", deps.Check.ProcessCheck)
	r.Post("/abandon", deps.Abandon.Abandon)
	r.Get("/healthz", deps.Health.Live)
	r.Get("/readyz", deps.Health.Ready)
	r.Method(http.MethodGet, "/metrics", obs.Handler())

	return r
}

// New returns an http.Server for the router with conservative timeouts.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
