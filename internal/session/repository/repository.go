package repository

import (
	"context"
	"time"

	"record-check-service/internal/session/domain"
)

// Repository defines persistence for sessions. Writes are limited to the two narrow
// updates the check workflow performs plus the abandon path's code removal.
type Repository interface {
	// GetBySessionID returns the session for id, or nil if not found.
	GetBySessionID(ctx context.Context, id string) (*domain.Session, error)
	// SetTxn stores the matching API correlation token on the session.
	SetTxn(ctx context.Context, id, txn string) error
	// SetAuthorizationCode stores a new authorization code and its expiry on the session.
	SetAuthorizationCode(ctx context.Context, id, code string, expiry time.Time) error
	// ClearAuthorizationCode removes any authorization code from the session.
	ClearAuthorizationCode(ctx context.Context, id string) error
}
