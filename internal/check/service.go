// Package check implements the record check workflow: validate the session,
// enforce the attempt cap, call the matching endpoint, persist the outcome,
// and issue an authorization code on completion.
package check

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	attemptdomain "record-check-service/internal/attempt/domain"
	"record-check-service/internal/audit"
	auditdomain "record-check-service/internal/audit/domain"
	identitydomain "record-check-service/internal/identity/domain"
	"record-check-service/internal/obs"
	paramsdomain "record-check-service/internal/params/domain"
	"record-check-service/internal/pdv"
	sessiondomain "record-check-service/internal/session/domain"
)

// maxAttempts is how many matching calls a session may consume before the
// journey is over regardless of outcome.
const maxAttempts = 2

// authCodeValidity is how long an issued authorization code stays redeemable.
const authCodeValidity = 10 * time.Minute

// Sentinel errors for the check service; the handler maps them to HTTP codes.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
	ErrIdentityMissing     = errors.New("no person identity for session")
	ErrTokenUnavailable    = errors.New("bearer token unavailable")
	ErrMalformedIdentity   = errors.New("person identity record is malformed")
	ErrMatchingUnavailable = errors.New("matching endpoint unreachable")
	ErrUnexpectedStatus    = errors.New("unexpected matching response status")
)

// Payload is one check invocation as received from the caller.
type Payload struct {
	SessionID string `json:"sessionId"`
	Nino      string `json:"nino"`
	// DeviceInformation is the opaque encoded device header forwarded by the
	// caller, attached to audit events only.
	DeviceInformation string `json:"txma-audit-encoded"`
}

// Outcome tells the caller whether another attempt is worthwhile.
type Outcome struct {
	RequestRetry bool `json:"requestRetry"`
}

// SessionRepo is the minimal session repository needed by the check service.
type SessionRepo interface {
	GetBySessionID(ctx context.Context, id string) (*sessiondomain.Session, error)
	SetTxn(ctx context.Context, id, txn string) error
	SetAuthorizationCode(ctx context.Context, id, code string, expiry time.Time) error
}

// IdentityRepo is the minimal identity repository needed by the check service.
type IdentityRepo interface {
	GetBySessionID(ctx context.Context, sessionID string) (*identitydomain.PersonIdentity, error)
}

// AttemptRepo is the minimal attempt repository needed by the check service.
type AttemptRepo interface {
	CountBySession(ctx context.Context, sessionID string) (int, error)
	Record(ctx context.Context, a *attemptdomain.Attempt) error
	RecordUser(ctx context.Context, sessionID, nino string, ttl int64) error
}

// ParamResolver resolves the per-client parameter set.
type ParamResolver interface {
	Resolve(ctx context.Context, clientID string) (paramsdomain.Parameters, error)
}

// TokenFetcher fetches a bearer token from the resolved token endpoint.
type TokenFetcher interface {
	FetchToken(ctx context.Context, url string) string
}

// Matcher posts a matching request to the resolved endpoint.
type Matcher interface {
	Match(ctx context.Context, url string, mr pdv.MatchRequest) (*pdv.MatchResult, error)
}

// Service runs the check workflow.
type Service struct {
	sessions   SessionRepo
	identities IdentityRepo
	attempts   AttemptRepo
	params     ParamResolver
	tokens     TokenFetcher
	matcher    Matcher
	emitter    audit.Emitter

	txnHeader   string
	auditPrefix string
	now         func() time.Time
}

// NewService returns a Service with the given dependencies. txnHeader names
// the matching response header carrying the correlation token; auditPrefix
// prefixes emitted audit event names.
func NewService(
	sessions SessionRepo,
	identities IdentityRepo,
	attempts AttemptRepo,
	params ParamResolver,
	tokens TokenFetcher,
	matcher Matcher,
	emitter audit.Emitter,
	txnHeader, auditPrefix string,
) *Service {
	return &Service{
		sessions:    sessions,
		identities:  identities,
		attempts:    attempts,
		params:      params,
		tokens:      tokens,
		matcher:     matcher,
		emitter:     emitter,
		txnHeader:   txnHeader,
		auditPrefix: auditPrefix,
		now:         time.Now,
	}
}

// ProcessCheck runs one check for the payload's session. It returns an
// Outcome when the journey produced an answer for the caller, or a sentinel
// error when the request cannot be evaluated.
func (s *Service) ProcessCheck(ctx context.Context, p Payload) (Outcome, error) {
	now := s.now().UTC()

	session, err := s.sessions.GetBySessionID(ctx, p.SessionID)
	if err != nil {
		return Outcome{}, err
	}
	if session == nil {
		return Outcome{}, ErrSessionNotFound
	}
	if !session.Valid(now) {
		return Outcome{}, ErrSessionExpired
	}

	count, err := s.attempts.CountBySession(ctx, p.SessionID)
	if err != nil {
		return Outcome{}, err
	}
	// Journey already consumed its attempts: answer without touching the
	// matching endpoint and without writing anything.
	if count >= maxAttempts {
		return Outcome{RequestRetry: false}, nil
	}

	identity, err := s.identities.GetBySessionID(ctx, p.SessionID)
	if err != nil {
		return Outcome{}, err
	}
	if identity == nil {
		return Outcome{}, ErrIdentityMissing
	}

	params, err := s.params.Resolve(ctx, session.ClientID)
	if err != nil {
		return Outcome{}, err
	}

	// Token presence is required even though the matching call does not
	// carry it; a blank token means the credential path is broken.
	if token := s.tokens.FetchToken(ctx, params.OtgURL); token == "" {
		return Outcome{}, ErrTokenUnavailable
	}

	details, err := identity.MatchDetails()
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrMalformedIdentity, err)
	}

	user := auditUser(session)
	audit.EmitAsync(s.emitter, ctx, s.auditEvent(auditdomain.StageRequestSent, params.Issuer, user, p.DeviceInformation, now))

	result, err := s.matcher.Match(ctx, params.MatchingURL, pdv.MatchRequest{
		FirstName:   details.FirstName,
		LastName:    details.LastName,
		DateOfBirth: details.DateOfBirth,
		Nino:        p.Nino,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrMatchingUnavailable, err)
	}
	obs.ObserveMatchingResponse(result.StatusCode)

	audit.EmitAsync(s.emitter, ctx, s.auditEvent(auditdomain.StageResponseReceived, params.Issuer, user, p.DeviceInformation, s.now().UTC()))

	// The correlation token is saved before any outcome is recorded so a
	// later failure still leaves the journey traceable.
	if err := s.sessions.SetTxn(ctx, p.SessionID, result.Header(s.txnHeader)); err != nil {
		return Outcome{}, err
	}

	var outcome attemptdomain.Outcome
	var text string
	switch result.StatusCode {
	case http.StatusOK:
		outcome, text = attemptdomain.OutcomePass, result.Body
	case http.StatusUnauthorized:
		outcome, text = attemptdomain.OutcomeFail, result.ErrorsJSON()
	case http.StatusFailedDependency:
		outcome, text = attemptdomain.OutcomeFail, result.Body
	default:
		return Outcome{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, result.StatusCode)
	}

	if err := s.attempts.Record(ctx, &attemptdomain.Attempt{
		SessionID: p.SessionID,
		Timestamp: now,
		Status:    result.StatusCode,
		Text:      text,
		Outcome:   outcome,
		TTL:       session.ExpiryDate,
	}); err != nil {
		return Outcome{}, err
	}

	// A pass, or a fail that exhausts the cap, ends the journey: issue the
	// authorization code and record the checked identity number.
	if result.StatusCode == http.StatusOK || count == maxAttempts-1 {
		code := uuid.New().String()
		if err := s.sessions.SetAuthorizationCode(ctx, p.SessionID, code, now.Add(authCodeValidity)); err != nil {
			return Outcome{}, err
		}
		if err := s.attempts.RecordUser(ctx, p.SessionID, p.Nino, session.ExpiryDate); err != nil {
			return Outcome{}, err
		}
		return Outcome{RequestRetry: false}, nil
	}
	return Outcome{RequestRetry: true}, nil
}

// auditUser builds the audit user context from the session.
func auditUser(s *sessiondomain.Session) auditdomain.User {
	return auditdomain.User{
		UserID:               s.Subject,
		SessionID:            s.SessionID,
		GovukSigninJourneyID: s.ClientSessionID,
		IPAddress:            s.ClientIPAddress,
		PersistentSessionID:  s.PersistentSessionID,
	}
}

func (s *Service) auditEvent(stage, issuer string, user auditdomain.User, deviceInfo string, at time.Time) *auditdomain.Event {
	event := auditdomain.NewEvent(s.auditPrefix, stage, issuer, user, at)
	if deviceInfo != "" {
		event.Extensions = map[string]any{"device_information": deviceInfo}
	}
	return event
}
