package services

import (
	"math"

	"guesthouse/internal/billing"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"
	"guesthouse/internal/utils"
)

// ReportsService aggregates bookings by calendar month. It is read-only
// and never touches booking or room state.
type ReportsService struct {
	Bookings repositories.BookingRepository
	Billing  billing.Calculator
}

// MonthlyReport counts bookings starting inside the month and sums
// revenue over them. Revenue uses a calendar day count capped at the
// window end, with no one-night floor. That intentionally differs from
// check-out billing; see DESIGN.md before touching either rule.
func (s ReportsService) MonthlyReport(year, month int) (models.MonthlyReport, error) {
	first, last, err := utils.MonthWindow(year, month)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	startDate := utils.FormatDate(first)
	endDate := utils.FormatDate(last)

	total, err := s.Bookings.CountStartedBetween(startDate, endDate)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	unique, err := s.Bookings.CountDistinctGuests(startDate, endDate)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	breakdown, err := s.Bookings.GuestBreakdown(startDate, endDate)
	if err != nil {
		return models.MonthlyReport{}, err
	}
	stays, err := s.Bookings.ListStartedBetween(startDate, endDate)
	if err != nil {
		return models.MonthlyReport{}, err
	}

	var sum float64
	for _, stay := range stays {
		stayStart, err := utils.ParseDate(stay.StartDate)
		if err != nil {
			return models.MonthlyReport{}, domain.InternalError{Msg: "bad stay start date", Err: err}
		}
		stayEnd, err := utils.ParseDate(stay.EndDate)
		if err != nil {
			return models.MonthlyReport{}, domain.InternalError{Msg: "bad stay end date", Err: err}
		}
		capped := stayEnd
		if stayEnd.After(last) {
			capped = last
		}
		// Calendar days, not wall-clock hours: a stay spanning a DST
		// shift must still count whole days.
		days := utils.DaysBetween(stayStart, capped)
		sum += float64(days) * float64(stay.Rate)
	}
	revenue := int64(math.Round(sum))

	return models.MonthlyReport{
		Year:          year,
		Month:         month,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalBookings: total,
		UniqueGuests:  unique,
		Breakdown:     breakdown,
		RevenueUGX:    revenue,
		RevenueUSD:    s.Billing.ToUSD(revenue),
	}, nil
}
