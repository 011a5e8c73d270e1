package services

import (
	"testing"
	"time"

	"guesthouse/internal/billing"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		DB:       db,
		Bookings: repositories.BookingRepository{DB: db},
		Rooms:    repositories.RoomRepository{DB: db},
		Guests:   repositories.GuestRepository{DB: db},
		Billing:  billing.Calculator{USDRate: 3700},
		Now: func() time.Time {
			return time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
		},
	}
	return svc, mock, func() { db.Close() }
}

func guestRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "phone", "nin"}).
		AddRow(1, "Amara", "0700111222", "")
}

func roomRow(available bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "number", "room_type", "rate", "available"}).
		AddRow(2, "101", "double", 50_000, available)
}

func TestCheckInOpensBookingAndTakesRoom(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM guests").WithArgs(int64(1)).WillReturnRows(guestRow())
	mock.ExpectQuery("FROM rooms").WithArgs(int64(2)).WillReturnRows(roomRow(true))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(1), int64(2), "2025-03-10", "2025-03-13", models.StatusCheckedIn).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("UPDATE rooms SET available").
		WithArgs(false, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	booking, err := svc.CheckIn(1, 2, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.ID != 7 || booking.Status != models.StatusCheckedIn {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if booking.StartDate != "2025-03-10" || booking.EndDate != "2025-03-13" {
		t.Fatalf("planned window wrong: %s..%s", booking.StartDate, booking.EndDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckInUnavailableRoomTouchesNothing(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM guests").WithArgs(int64(1)).WillReturnRows(guestRow())
	mock.ExpectQuery("FROM rooms").WithArgs(int64(2)).WillReturnRows(roomRow(false))

	if _, err := svc.CheckIn(1, 2, 3); !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	// No transaction, no insert, no availability flip.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckInRejectsNonPositiveNights(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	if _, err := svc.CheckIn(1, 2, 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckInUnknownGuest(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM guests").WithArgs(int64(55)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "nin"}))

	if _, err := svc.CheckIn(55, 2, 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func bookingDetailRow(status, start, end string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "guest_id", "room_id", "name", "phone", "nin", "number", "rate", "start", "end", "status",
	}).AddRow(7, 1, 2, "Amara", "0700111222", "", "101", 50_000, start, end, status)
}

func TestCheckOutSameDayBillsOneNight(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs(int64(7)).
		WillReturnRows(bookingDetailRow(models.StatusCheckedIn, "2025-03-10", "2025-03-13"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(models.StatusCheckedOut, "2025-03-10", int64(7), models.StatusCheckedIn).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET available").
		WithArgs(true, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt, err := svc.CheckOut(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt.Nights != 1 {
		t.Fatalf("same-day checkout must bill one night, got %d", receipt.Nights)
	}
	if receipt.AmountUGX != 50_000 {
		t.Fatalf("amount wrong: got %d want 50000", receipt.AmountUGX)
	}
	if receipt.EndDate != "2025-03-10" {
		t.Fatalf("end date not rewritten to today: %s", receipt.EndDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckOutAfterPlannedEndCapsAtPlannedEnd(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	// Checkout happens 2025-03-10 but the stay was planned to end 2025-03-08.
	mock.ExpectQuery("FROM bookings b").WithArgs(int64(7)).
		WillReturnRows(bookingDetailRow(models.StatusCheckedIn, "2025-03-05", "2025-03-08"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(models.StatusCheckedOut, "2025-03-08", int64(7), models.StatusCheckedIn).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET available").
		WithArgs(true, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt, err := svc.CheckOut(7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt.Nights != 3 {
		t.Fatalf("expected 3 nights, got %d", receipt.Nights)
	}
	if receipt.AmountUGX != 150_000 {
		t.Fatalf("amount wrong: got %d want 150000", receipt.AmountUGX)
	}
	if receipt.EndDate != "2025-03-08" {
		t.Fatalf("end date should cap at planned end, got %s", receipt.EndDate)
	}
}

func TestCheckOutAlreadyClosedNeverMutates(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs(int64(7)).
		WillReturnRows(bookingDetailRow(models.StatusCheckedOut, "2025-03-01", "2025-03-04"))

	if _, err := svc.CheckOut(7); !domain.IsAlreadyClosed(err) {
		t.Fatalf("expected already closed error, got %v", err)
	}
	// No transaction was even opened.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCheckOutUnknownBooking(t *testing.T) {
	svc, mock, done := newBookingService(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := svc.CheckOut(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
