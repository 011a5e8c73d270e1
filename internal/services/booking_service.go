package services

import (
	"database/sql"
	"time"

	"guesthouse/internal/billing"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
	"guesthouse/internal/repositories"
	"guesthouse/internal/utils"
)

// BookingService is the booking ledger: it owns the check-in/check-out
// state machine and is the only writer of rooms.available. Both compound
// effects run as single transactions, so a failure between the booking
// write and the availability flip leaves the prior state intact.
type BookingService struct {
	DB       *sql.DB
	Bookings repositories.BookingRepository
	Rooms    repositories.RoomRepository
	Guests   repositories.GuestRepository
	Billing  billing.Calculator

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

func (s BookingService) today() time.Time {
	if s.Now != nil {
		return utils.DateOnly(s.Now())
	}
	return utils.DateOnly(time.Now())
}

// CheckIn opens a booking for today and marks the room taken.
func (s BookingService) CheckIn(guestID, roomID int64, plannedNights int) (models.Booking, error) {
	if plannedNights < 1 {
		return models.Booking{}, domain.ValidationError{Field: "nights", Msg: "must be at least 1"}
	}
	if _, err := s.Guests.GetByID(guestID); err != nil {
		return models.Booking{}, err
	}
	room, err := s.Rooms.GetByID(roomID)
	if err != nil {
		return models.Booking{}, err
	}
	if !room.Available {
		return models.Booking{}, domain.UnavailableError{Resource: "room " + room.Number}
	}

	start := s.today()
	startDate := utils.FormatDate(start)
	endDate := utils.FormatDate(start.AddDate(0, 0, plannedNights))

	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "begin check-in tx failed", Err: err}
	}
	defer tx.Rollback()

	id, err := s.Bookings.Insert(tx, guestID, roomID, startDate, endDate)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.Rooms.SetAvailability(tx, roomID, false); err != nil {
		return models.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "commit check-in failed", Err: err}
	}

	return models.Booking{
		ID:        id,
		GuestID:   guestID,
		RoomID:    roomID,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    models.StatusCheckedIn,
	}, nil
}

// CheckOut closes an open booking, bills the stay and frees the room.
// The end date is rewritten to the actual departure day, capped at the
// planned end. A stay always bills at least one night.
func (s BookingService) CheckOut(bookingID int64) (models.Receipt, error) {
	det, err := s.Bookings.GetDetail(bookingID)
	if err != nil {
		return models.Receipt{}, err
	}
	if det.Status == models.StatusCheckedOut {
		return models.Receipt{}, domain.AlreadyClosedError{BookingID: bookingID}
	}

	start, err := utils.ParseDate(det.StartDate)
	if err != nil {
		return models.Receipt{}, domain.InternalError{Msg: "bad booking start date", Err: err}
	}
	plannedEnd, err := utils.ParseDate(det.EndDate)
	if err != nil {
		return models.Receipt{}, domain.InternalError{Msg: "bad booking end date", Err: err}
	}

	actualEnd := plannedEnd
	if today := s.today(); today.Before(plannedEnd) {
		actualEnd = today
	}
	nights := utils.DaysBetween(start, actualEnd)
	if nights < 1 {
		nights = 1
	}

	charge, err := s.Billing.Quote(det.Rate, nights)
	if err != nil {
		return models.Receipt{}, err
	}

	endDate := utils.FormatDate(actualEnd)
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Receipt{}, domain.InternalError{Msg: "begin check-out tx failed", Err: err}
	}
	defer tx.Rollback()

	if err := s.Bookings.Close(tx, bookingID, endDate); err != nil {
		return models.Receipt{}, err
	}
	if err := s.Rooms.SetAvailability(tx, det.RoomID, true); err != nil {
		return models.Receipt{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Receipt{}, domain.InternalError{Msg: "commit check-out failed", Err: err}
	}

	return models.Receipt{
		BookingID:  bookingID,
		GuestName:  det.GuestName,
		GuestPhone: det.GuestPhone,
		GuestNIN:   det.GuestNIN,
		RoomNumber: det.RoomNumber,
		StartDate:  det.StartDate,
		EndDate:    endDate,
		Nights:     charge.Nights,
		AmountUGX:  charge.AmountUGX,
		AmountUSD:  charge.AmountUSD,
	}, nil
}

func (s BookingService) ListBookings(includeClosed bool) ([]models.BookingRow, error) {
	return s.Bookings.List(includeClosed)
}
