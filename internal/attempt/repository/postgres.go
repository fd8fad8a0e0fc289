package repository

import (
	"context"
	"database/sql"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"record-check-service/internal/attempt/domain"
)

type PostgresRepository struct {
	db *sql.DB

	entropyMu sync.Mutex
	entropy   *mathrand.Rand
}

// NewPostgresRepository returns an attempt repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		entropy: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
}

// CountBySession returns how many attempts have been recorded for the session.
func (r *PostgresRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Record persists one attempt. It sets a.ID to a new sortable identifier.
func (r *PostgresRepository) Record(ctx context.Context, a *domain.Attempt) error {
	a.ID = r.newID()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (id, session_id, ts, status, text, attempt, ttl)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.SessionID, a.Timestamp, a.Status, a.Text, string(a.Outcome), a.TTL)
	return err
}

// RecordUser upserts the session-to-identity-number mapping.
func (r *PostgresRepository) RecordUser(ctx context.Context, sessionID, nino string, ttl int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO nino_users (session_id, nino, ttl)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET nino = EXCLUDED.nino, ttl = EXCLUDED.ttl`,
		sessionID, nino, ttl)
	return err
}

func (r *PostgresRepository) newID() string {
	r.entropyMu.Lock()
	defer r.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()
}
