package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"record-check-service/internal/session/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a session repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetBySessionID returns the session for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetBySessionID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT session_id, client_id, expiry_date, client_ip_address, persistent_session_id,
		       subject, client_session_id, txn, authorization_code, authorization_code_expiry_date, created_at
		FROM sessions
		WHERE session_id = $1`, id)

	var (
		s          domain.Session
		authCode   sql.NullString
		authExpiry sql.NullInt64
	)
	err := row.Scan(&s.SessionID, &s.ClientID, &s.ExpiryDate, &s.ClientIPAddress,
		&s.PersistentSessionID, &s.Subject, &s.ClientSessionID, &s.Txn,
		&authCode, &authExpiry, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if authCode.Valid {
		s.AuthorizationCode = authCode.String
	}
	if authExpiry.Valid {
		s.AuthorizationCodeExpiryDate = authExpiry.Int64
	}
	return &s, nil
}

// SetTxn stores the matching API correlation token on the session.
func (r *PostgresRepository) SetTxn(ctx context.Context, id, txn string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE sessions SET txn = $2 WHERE session_id = $1`, id, txn)
	return err
}

// SetAuthorizationCode stores a new authorization code and its expiry on the session.
func (r *PostgresRepository) SetAuthorizationCode(ctx context.Context, id, code string, expiry time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET authorization_code = $2, authorization_code_expiry_date = $3
		WHERE session_id = $1`, id, code, expiry.Unix())
	return err
}

// ClearAuthorizationCode removes any authorization code from the session.
func (r *PostgresRepository) ClearAuthorizationCode(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET authorization_code = NULL, authorization_code_expiry_date = NULL
		WHERE session_id = $1`, id)
	return err
}
