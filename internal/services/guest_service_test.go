package services

import (
	"testing"

	"guesthouse/internal/domain"
	"guesthouse/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRegisterGuestValidation(t *testing.T) {
	svc := GuestService{}

	if _, err := svc.RegisterGuest("", "0700111222", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if _, err := svc.RegisterGuest("Amara", "  ", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty phone, got %v", err)
	}
}

func TestRegisterGuestNINIsOptional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO guests").
		WithArgs("Amara", "0700111222", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := GuestService{Guests: repositories.GuestRepository{DB: db}}
	guest, err := svc.RegisterGuest("Amara", "0700111222", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if guest.ID != 1 || guest.Name != "Amara" {
		t.Fatalf("unexpected guest: %+v", guest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
