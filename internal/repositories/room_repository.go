package repositories

import (
	"database/sql"
	"errors"

	intdb "guesthouse/internal/db"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type RoomRepository struct {
	DB *sql.DB
}

func (r RoomRepository) Insert(number, roomType string, rate int64) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO rooms (number, room_type, rate, available)
		VALUES (?, ?, ?, 1)
	`, number, roomType, rate)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.DuplicateKeyError{Field: "room number", Err: err}
		}
		return 0, domain.InternalError{Msg: "insert room failed", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r RoomRepository) List() ([]models.Room, error) {
	rows, err := r.DB.Query(`
		SELECT id, number, room_type, rate, available
		FROM rooms
		ORDER BY number
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list rooms failed", Err: err}
	}
	defer rows.Close()

	list := []models.Room{}
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Rate, &room.Available); err != nil {
			return nil, domain.InternalError{Msg: "scan room failed", Err: err}
		}
		list = append(list, room)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate rooms failed", Err: err}
	}
	return list, nil
}

func (r RoomRepository) GetByID(id int64) (models.Room, error) {
	var room models.Room
	err := r.DB.QueryRow(`
		SELECT id, number, room_type, rate, available
		FROM rooms
		WHERE id=?
	`, id).Scan(&room.ID, &room.Number, &room.Type, &room.Rate, &room.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, domain.NotFoundError{Resource: "room"}
	}
	if err != nil {
		return models.Room{}, domain.InternalError{Msg: "get room failed", Err: err}
	}
	return room, nil
}

// SetAvailability is only called by the booking ledger, inside the same
// transaction as the booking write.
func (r RoomRepository) SetAvailability(q intdb.DBTX, id int64, available bool) error {
	res, err := q.Exec(`UPDATE rooms SET available=? WHERE id=?`, available, id)
	if err != nil {
		return domain.InternalError{Msg: "update room availability failed", Err: err}
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "room"}
	}
	return nil
}
