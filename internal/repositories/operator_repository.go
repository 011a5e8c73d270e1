package repositories

import (
	"database/sql"
	"errors"

	"guesthouse/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// Operator is the single front-desk login; there are no roles.
type Operator struct {
	ID           int64
	Name         string
	Username     string
	PasswordHash string
}

type OperatorRepository struct {
	DB *sql.DB
}

func (r OperatorRepository) GetByUsername(username string) (Operator, error) {
	var op Operator
	err := r.DB.QueryRow(`
		SELECT id, name, username, password_hash
		FROM operators
		WHERE username=?
	`, username).Scan(&op.ID, &op.Name, &op.Username, &op.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return Operator{}, domain.NotFoundError{Resource: "operator"}
	}
	if err != nil {
		return Operator{}, domain.InternalError{Msg: "get operator failed", Err: err}
	}
	return op, nil
}

func (r OperatorRepository) Insert(name, username, passwordHash string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO operators (name, username, password_hash)
		VALUES (?, ?, ?)
	`, name, username, passwordHash)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.DuplicateKeyError{Field: "username", Err: err}
		}
		return 0, domain.InternalError{Msg: "insert operator failed", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}
