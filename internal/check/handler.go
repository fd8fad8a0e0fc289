package check

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"record-check-service/internal/web"
)

// Handler exposes the check workflow over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a Handler for the given service.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ProcessCheck handles POST /check. Only an unusable session is the caller's
// fault; every other failure is answered as an internal error.
func (h *Handler) ProcessCheck(w http.ResponseWriter, r *http.Request) {
	var p Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		web.WriteError(w, http.StatusInternalServerError, "malformed request body")
		return
	}

	out, err := h.svc.ProcessCheck(r.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrSessionExpired):
			web.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("check: session=%s: %v", p.SessionID, err)
			web.WriteError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	web.WriteJSON(w, http.StatusOK, out)
}
