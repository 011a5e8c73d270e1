package utils

import (
	"math"
	"strings"
	"time"

	"guesthouse/internal/domain"
)

const layoutDate = "2006-01-02"

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// DateOnly drops the time-of-day part.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole days from start to end; negative when end is
// before start. Rounding absorbs DST offsets.
func DaysBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// MonthWindow returns the first and last day of a calendar month.
func MonthWindow(year, month int) (time.Time, time.Time, error) {
	if year < 1 {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "year", Msg: "must be positive"}
	}
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "month", Msg: "must be between 1 and 12"}
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last, nil
}
