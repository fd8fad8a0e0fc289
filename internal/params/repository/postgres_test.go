package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow("/a", "1").
		AddRow("/b", "2")
	mock.ExpectQuery("SELECT name, value FROM parameters").WithArgs("/a", "/b", "/c").WillReturnRows(rows)

	values, err := repo.GetValues(context.Background(), []string{"/a", "/b", "/c"})
	if err != nil {
		t.Fatalf("GetValues: %v", err)
	}
	if values["/a"] != "1" || values["/b"] != "2" {
		t.Errorf("values = %v", values)
	}
	if _, ok := values["/c"]; ok {
		t.Error("missing name should be absent from result")
	}
}

func TestGetValues_NoNames(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)
	values, err := repo.GetValues(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetValues: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}
