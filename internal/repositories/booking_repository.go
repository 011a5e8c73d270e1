package repositories

import (
	"database/sql"
	"errors"

	intdb "guesthouse/internal/db"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// BookingDetail joins the guest and room data needed for check-out and
// document generation.
type BookingDetail struct {
	ID         int64
	GuestID    int64
	RoomID     int64
	GuestName  string
	GuestPhone string
	GuestNIN   string
	RoomNumber string
	Rate       int64
	StartDate  string
	EndDate    string
	Status     string
}

// StayWindow is the slice of a booking the revenue report needs.
type StayWindow struct {
	StartDate string
	EndDate   string
	Rate      int64
}

func (r BookingRepository) Insert(q intdb.DBTX, guestID, roomID int64, startDate, endDate string) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO bookings (guest_id, room_id, start_date, end_date, status)
		VALUES (?, ?, ?, ?, ?)
	`, guestID, roomID, startDate, endDate, models.StatusCheckedIn)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert booking failed", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r BookingRepository) GetDetail(id int64) (BookingDetail, error) {
	var d BookingDetail
	err := r.DB.QueryRow(`
		SELECT b.id, b.guest_id, b.room_id,
			g.name, g.phone, COALESCE(g.nin_number, ''),
			r.number, r.rate,
			DATE_FORMAT(b.start_date, '%Y-%m-%d'),
			DATE_FORMAT(b.end_date, '%Y-%m-%d'),
			b.status
		FROM bookings b
		JOIN guests g ON b.guest_id = g.id
		JOIN rooms r ON b.room_id = r.id
		WHERE b.id=?
	`, id).Scan(
		&d.ID, &d.GuestID, &d.RoomID,
		&d.GuestName, &d.GuestPhone, &d.GuestNIN,
		&d.RoomNumber, &d.Rate,
		&d.StartDate, &d.EndDate, &d.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingDetail{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return BookingDetail{}, domain.InternalError{Msg: "get booking failed", Err: err}
	}
	return d, nil
}

// Close marks a booking checked out and rewrites its end date to the actual
// departure day. The status guard keeps a concurrent or repeated close from
// mutating an already closed booking.
func (r BookingRepository) Close(q intdb.DBTX, id int64, endDate string) error {
	res, err := q.Exec(`
		UPDATE bookings SET status=?, end_date=?
		WHERE id=? AND status=?
	`, models.StatusCheckedOut, endDate, id, models.StatusCheckedIn)
	if err != nil {
		return domain.InternalError{Msg: "close booking failed", Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.AlreadyClosedError{BookingID: id}
	}
	return nil
}

func (r BookingRepository) List(includeClosed bool) ([]models.BookingRow, error) {
	query := `
		SELECT b.id, g.name, r.number,
			DATE_FORMAT(b.start_date, '%Y-%m-%d'),
			DATE_FORMAT(b.end_date, '%Y-%m-%d'),
			b.status
		FROM bookings b
		JOIN guests g ON b.guest_id = g.id
		JOIN rooms r ON b.room_id = r.id
	`
	args := []any{}
	if !includeClosed {
		query += ` WHERE b.status != ?`
		args = append(args, models.StatusCheckedOut)
	}
	query += ` ORDER BY b.id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bookings failed", Err: err}
	}
	defer rows.Close()

	list := []models.BookingRow{}
	for rows.Next() {
		var b models.BookingRow
		if err := rows.Scan(&b.ID, &b.GuestName, &b.RoomNumber, &b.StartDate, &b.EndDate, &b.Status); err != nil {
			return nil, domain.InternalError{Msg: "scan booking failed", Err: err}
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate bookings failed", Err: err}
	}
	return list, nil
}

func (r BookingRepository) CountStartedBetween(startDate, endDate string) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE start_date BETWEEN ? AND ?
	`, startDate, endDate).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Msg: "count bookings failed", Err: err}
	}
	return n, nil
}

func (r BookingRepository) CountDistinctGuests(startDate, endDate string) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(DISTINCT guest_id) FROM bookings WHERE start_date BETWEEN ? AND ?
	`, startDate, endDate).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Msg: "count distinct guests failed", Err: err}
	}
	return n, nil
}

func (r BookingRepository) GuestBreakdown(startDate, endDate string) ([]models.GuestBookings, error) {
	rows, err := r.DB.Query(`
		SELECT g.id, g.name, COUNT(b.id) AS bookings
		FROM bookings b
		JOIN guests g ON b.guest_id = g.id
		WHERE b.start_date BETWEEN ? AND ?
		GROUP BY g.id, g.name
		ORDER BY bookings DESC
	`, startDate, endDate)
	if err != nil {
		return nil, domain.InternalError{Msg: "guest breakdown failed", Err: err}
	}
	defer rows.Close()

	list := []models.GuestBookings{}
	for rows.Next() {
		var gb models.GuestBookings
		if err := rows.Scan(&gb.GuestID, &gb.Name, &gb.Bookings); err != nil {
			return nil, domain.InternalError{Msg: "scan breakdown failed", Err: err}
		}
		list = append(list, gb)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate breakdown failed", Err: err}
	}
	return list, nil
}

func (r BookingRepository) ListStartedBetween(startDate, endDate string) ([]StayWindow, error) {
	rows, err := r.DB.Query(`
		SELECT DATE_FORMAT(b.start_date, '%Y-%m-%d'),
			DATE_FORMAT(b.end_date, '%Y-%m-%d'),
			r.rate
		FROM bookings b
		JOIN rooms r ON b.room_id = r.id
		WHERE b.start_date BETWEEN ? AND ?
	`, startDate, endDate)
	if err != nil {
		return nil, domain.InternalError{Msg: "list stays failed", Err: err}
	}
	defer rows.Close()

	list := []StayWindow{}
	for rows.Next() {
		var s StayWindow
		if err := rows.Scan(&s.StartDate, &s.EndDate, &s.Rate); err != nil {
			return nil, domain.InternalError{Msg: "scan stay failed", Err: err}
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate stays failed", Err: err}
	}
	return list, nil
}
