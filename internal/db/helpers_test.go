package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHasTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("guests").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("guests"))
	if !HasTable(db, "guests") {
		t.Fatal("expected guests table to be reported present")
	}

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	if HasTable(db, "missing") {
		t.Fatal("expected missing table to be reported absent")
	}

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("broken").
		WillReturnError(errors.New("connection lost"))
	if HasTable(db, "broken") {
		t.Fatal("query failure must read as absent")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("guests", "ni_number").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("ni_number"))
	if !HasColumn(db, "guests", "ni_number") {
		t.Fatal("expected legacy column to be reported present")
	}

	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("guests", "nope").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	if HasColumn(db, "guests", "nope") {
		t.Fatal("expected unknown column to be reported absent")
	}
}

func TestNullIfEmpty(t *testing.T) {
	if v := NullIfEmpty(""); v != nil {
		t.Fatalf("empty string must map to nil, got %v", v)
	}
	if v := NullIfEmpty("CF123"); v != "CF123" {
		t.Fatalf("non-empty string must pass through, got %v", v)
	}
}
