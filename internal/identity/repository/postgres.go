package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"record-check-service/internal/identity/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a person identity repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetBySessionID returns the person identity for the session, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.PersonIdentity, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT session_id, names, birth_dates, expiry_date
		FROM person_identities
		WHERE session_id = $1`, sessionID)

	var (
		p          domain.PersonIdentity
		names      []byte
		birthDates []byte
	)
	if err := row.Scan(&p.SessionID, &names, &birthDates, &p.ExpiryDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(names, &p.Names); err != nil {
		return nil, fmt.Errorf("decode names for session %s: %w", sessionID, err)
	}
	if err := json.Unmarshal(birthDates, &p.BirthDates); err != nil {
		return nil, fmt.Errorf("decode birth dates for session %s: %w", sessionID, err)
	}
	return &p, nil
}
