// Package abandon lets a caller walk away from an in-progress journey,
// revoking any authorization code already issued for the session.
package abandon

import (
	"context"
	"log"
	"net/http"
	"time"

	"record-check-service/internal/audit"
	auditdomain "record-check-service/internal/audit/domain"
	paramsdomain "record-check-service/internal/params/domain"
	sessiondomain "record-check-service/internal/session/domain"
	"record-check-service/internal/web"
)

// sessionHeader carries the session id on abandon requests.
const sessionHeader = "session-id"

// SessionRepo is the minimal session repository needed by the abandon handler.
type SessionRepo interface {
	GetBySessionID(ctx context.Context, id string) (*sessiondomain.Session, error)
	ClearAuthorizationCode(ctx context.Context, id string) error
}

// ParamResolver resolves the per-client parameter set, used here only for
// the audit component id.
type ParamResolver interface {
	Resolve(ctx context.Context, clientID string) (paramsdomain.Parameters, error)
}

// Handler exposes journey abandonment over HTTP.
type Handler struct {
	sessions SessionRepo
	params   ParamResolver
	emitter  audit.Emitter

	auditPrefix string
	now         func() time.Time
}

// NewHandler returns a Handler with the given dependencies.
func NewHandler(sessions SessionRepo, params ParamResolver, emitter audit.Emitter, auditPrefix string) *Handler {
	return &Handler{
		sessions:    sessions,
		params:      params,
		emitter:     emitter,
		auditPrefix: auditPrefix,
		now:         time.Now,
	}
}

// Abandon handles POST /abandon. The session id travels in a header, not the
// body. A cleared journey answers 200 with an empty body.
func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		web.WriteError(w, http.StatusBadRequest, "session-id header required")
		return
	}

	session, err := h.sessions.GetBySessionID(r.Context(), id)
	if err != nil {
		log.Printf("abandon: session=%s: %v", id, err)
		web.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if session == nil {
		web.WriteError(w, http.StatusBadRequest, "unknown session")
		return
	}

	if err := h.sessions.ClearAuthorizationCode(r.Context(), id); err != nil {
		log.Printf("abandon: clear code session=%s: %v", id, err)
		web.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Issuer lookup is best-effort; a failed resolve still abandons.
	var issuer string
	if params, err := h.params.Resolve(r.Context(), session.ClientID); err == nil {
		issuer = params.Issuer
	} else {
		log.Printf("abandon: resolve issuer client=%s: %v", session.ClientID, err)
	}
	audit.EmitAsync(h.emitter, r.Context(), auditdomain.NewEvent(
		h.auditPrefix, auditdomain.StageAbandoned, issuer,
		auditdomain.User{
			UserID:               session.Subject,
			SessionID:            session.SessionID,
			GovukSigninJourneyID: session.ClientSessionID,
			IPAddress:            session.ClientIPAddress,
			PersistentSessionID:  session.PersistentSessionID,
		},
		h.now().UTC(),
	))

	w.WriteHeader(http.StatusOK)
}
