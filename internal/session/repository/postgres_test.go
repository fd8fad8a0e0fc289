package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetBySessionID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"session_id", "client_id", "expiry_date", "client_ip_address", "persistent_session_id",
		"subject", "client_session_id", "txn", "authorization_code", "authorization_code_expiry_date", "created_at",
	}).AddRow("sess-1", "client-a", int64(1900000000), "10.0.0.1", "persist-1",
		"subject-1", "journey-1", "", nil, nil, created)
	mock.ExpectQuery("SELECT session_id, client_id, expiry_date").WithArgs("sess-1").WillReturnRows(rows)

	s, err := repo.GetBySessionID(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("GetBySessionID: %v", err)
	}
	if s == nil {
		t.Fatal("expected session, got nil")
	}
	if s.ClientID != "client-a" || s.ExpiryDate != 1900000000 {
		t.Errorf("unexpected session: %+v", s)
	}
	if s.AuthorizationCode != "" || s.AuthorizationCodeExpiryDate != 0 {
		t.Errorf("authorization code fields should be zero, got %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestGetBySessionID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	mock.ExpectQuery("SELECT session_id, client_id, expiry_date").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}))

	s, err := repo.GetBySessionID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetBySessionID: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for missing session, got %+v", s)
	}
}

func TestSetTxn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	mock.ExpectExec("UPDATE sessions SET txn").WithArgs("sess-1", "txn-abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetTxn(context.Background(), "sess-1", "txn-abc"); err != nil {
		t.Fatalf("SetTxn: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSetAuthorizationCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	expiry := time.Now().Add(10 * time.Minute)
	mock.ExpectExec("UPDATE sessions").WithArgs("sess-1", "code-1", expiry.Unix()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetAuthorizationCode(context.Background(), "sess-1", "code-1", expiry); err != nil {
		t.Fatalf("SetAuthorizationCode: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestClearAuthorizationCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	mock.ExpectExec("UPDATE sessions").WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearAuthorizationCode(context.Background(), "sess-1"); err != nil {
		t.Fatalf("ClearAuthorizationCode: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
