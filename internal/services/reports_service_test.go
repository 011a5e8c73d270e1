package services

import (
	"testing"
	"time"

	"guesthouse/internal/billing"
	"guesthouse/internal/domain"
	"guesthouse/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMonthlyReportRevenueCapsAtWindowEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE start_date BETWEEN").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))
	mock.ExpectQuery("DISTINCT guest_id").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))
	mock.ExpectQuery("GROUP BY g.id").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bookings"}).
			AddRow(1, "Amara", 2).
			AddRow(2, "Okello", 1))
	// Three stays: fully inside the month, spilling past it, and same-day.
	mock.ExpectQuery("JOIN rooms r").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"start", "end", "rate"}).
			AddRow("2025-03-10", "2025-03-13", 50_000).
			AddRow("2025-03-30", "2025-04-05", 20_000).
			AddRow("2025-03-15", "2025-03-15", 80_000))

	svc := ReportsService{
		Bookings: repositories.BookingRepository{DB: db},
		Billing:  billing.Calculator{USDRate: 3700},
	}
	rep, err := svc.MonthlyReport(2025, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 3 days * 50,000 for the first stay, 1 capped day * 20,000 for the
	// second, nothing for the same-day stay.
	if rep.RevenueUGX != 170_000 {
		t.Fatalf("revenue wrong: got %d want 170000", rep.RevenueUGX)
	}
	if rep.TotalBookings != 3 || rep.UniqueGuests != 2 {
		t.Fatalf("counts wrong: %+v", rep)
	}
	if rep.StartDate != "2025-03-01" || rep.EndDate != "2025-03-31" {
		t.Fatalf("window wrong: %s..%s", rep.StartDate, rep.EndDate)
	}
	if len(rep.Breakdown) != 2 || rep.Breakdown[0].Name != "Amara" {
		t.Fatalf("breakdown wrong: %+v", rep.Breakdown)
	}
	want := 170_000.0 / 3700.0
	if diff := rep.RevenueUSD - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("usd conversion wrong: got %f want %f", rep.RevenueUSD, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMonthlyReportEmptyMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE start_date BETWEEN").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("DISTINCT guest_id").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("GROUP BY g.id").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bookings"}))
	mock.ExpectQuery("JOIN rooms r").
		WithArgs("2025-01-01", "2025-01-31").
		WillReturnRows(sqlmock.NewRows([]string{"start", "end", "rate"}))

	svc := ReportsService{Bookings: repositories.BookingRepository{DB: db}}
	rep, err := svc.MonthlyReport(2025, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rep.TotalBookings != 0 || rep.RevenueUGX != 0 || len(rep.Breakdown) != 0 {
		t.Fatalf("empty month should report zeros: %+v", rep)
	}
}

func TestMonthlyReportRevenueStableAcrossDSTShift(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings WHERE start_date BETWEEN").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectQuery("DISTINCT guest_id").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectQuery("GROUP BY g.id").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "bookings"}).
			AddRow(1, "Amara", 1))
	// The stay crosses the March 30 clock change; it still counts 3 days.
	mock.ExpectQuery("JOIN rooms r").
		WithArgs("2025-03-01", "2025-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"start", "end", "rate"}).
			AddRow("2025-03-28", "2025-03-31", 24_000))

	svc := ReportsService{Bookings: repositories.BookingRepository{DB: db}}
	rep, err := svc.MonthlyReport(2025, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rep.RevenueUGX != 72_000 {
		t.Fatalf("revenue wrong across clock change: got %d want 72000", rep.RevenueUGX)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMonthlyReportRejectsBadMonth(t *testing.T) {
	svc := ReportsService{}
	if _, err := svc.MonthlyReport(2025, 13); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.MonthlyReport(2025, 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
