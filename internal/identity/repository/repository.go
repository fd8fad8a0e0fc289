package repository

import (
	"context"

	"record-check-service/internal/identity/domain"
)

// Repository defines read access to person identity records.
type Repository interface {
	// GetBySessionID returns the person identity captured for the session, or nil if not found.
	GetBySessionID(ctx context.Context, sessionID string) (*domain.PersonIdentity, error)
}
