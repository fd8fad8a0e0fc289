package repository

import (
	"context"

	"record-check-service/internal/attempt/domain"
)

// Repository defines persistence for verification attempts and verified-user records.
//
// CountBySession followed by Record is read-then-act without a compare-and-swap, so
// concurrent duplicate requests for one session can exceed the attempt cap. Accepted:
// the cap bounds evaluated attempts per well-behaved caller, not adversarial bursts.
type Repository interface {
	// CountBySession returns how many attempts have been recorded for the session.
	CountBySession(ctx context.Context, sessionID string) (int, error)
	// Record persists one attempt. The attempt ID is assigned by the repository.
	Record(ctx context.Context, a *domain.Attempt) error
	// RecordUser upserts the session-to-identity-number mapping written on terminal outcomes.
	RecordUser(ctx context.Context, sessionID, nino string, ttl int64) error
}
