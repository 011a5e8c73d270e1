package repositories

import (
	"database/sql"
	"errors"

	intdb "guesthouse/internal/db"
	"guesthouse/internal/domain"
	"guesthouse/internal/domain/models"
)

type GuestRepository struct {
	DB *sql.DB
}

func (r GuestRepository) Insert(name, phone, nin string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO guests (name, phone, nin_number)
		VALUES (?, ?, ?)
	`, name, phone, intdb.NullIfEmpty(nin))
	if err != nil {
		return 0, domain.InternalError{Msg: "insert guest failed", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r GuestRepository) List() ([]models.Guest, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, phone, COALESCE(nin_number, '')
		FROM guests
		ORDER BY id
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list guests failed", Err: err}
	}
	defer rows.Close()

	list := []models.Guest{}
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Phone, &g.NIN); err != nil {
			return nil, domain.InternalError{Msg: "scan guest failed", Err: err}
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate guests failed", Err: err}
	}
	return list, nil
}

func (r GuestRepository) GetByID(id int64) (models.Guest, error) {
	var g models.Guest
	err := r.DB.QueryRow(`
		SELECT id, name, phone, COALESCE(nin_number, '')
		FROM guests
		WHERE id=?
	`, id).Scan(&g.ID, &g.Name, &g.Phone, &g.NIN)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guest{}, domain.NotFoundError{Resource: "guest"}
	}
	if err != nil {
		return models.Guest{}, domain.InternalError{Msg: "get guest failed", Err: err}
	}
	return g, nil
}
