// Package handler serves liveness and readiness probes for Kubernetes,
// load balancers, and CI.
package handler

import (
	"context"
	"log"
	"net/http"

	"record-check-service/internal/web"
)

// Pinger checks a backing store, e.g. *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler answers the health probes.
type Handler struct {
	pinger Pinger
}

// NewHandler returns a Handler. pinger may be nil; readiness then skips the
// store ping.
func NewHandler(pinger Pinger) *Handler {
	return &Handler{pinger: pinger}
}

// Live handles GET /healthz: the process is up.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz: the process can serve traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			log.Printf("health: store ping: %v", err)
			web.WriteError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
