package migrations

import (
	"database/sql"
	"fmt"
	"log"

	intdb "guesthouse/internal/db"
)

// Migrations run once each, in order, before the core is usable. DDL on
// MySQL auto-commits, so each step must be safe to re-enter if a previous
// run died between the step and its version record.
type migration struct {
	version int
	name    string
	run     func(db *sql.DB) error
}

var steps = []migration{
	{1, "create_core_tables", createCoreTables},
	{2, "rename_legacy_nin_column", renameLegacyNINColumn},
}

// Run applies all pending migrations.
func Run(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range steps {
		applied, err := isApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		if _, err := db.Exec(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`, m.version, m.name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		log.Printf("[MIGRATIONS] applied version=%d name=%s", m.version, m.name)
	}
	return nil
}

func isApplied(db *sql.DB, version int) (bool, error) {
	var v int
	err := db.QueryRow(`SELECT version FROM schema_migrations WHERE version=?`, version).Scan(&v)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read schema_migrations: %w", err)
	}
	return true, nil
}

func createCoreTables(db *sql.DB) error {
	ddls := []string{`
CREATE TABLE IF NOT EXISTS rooms (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	number VARCHAR(20) NOT NULL,
	room_type VARCHAR(100) NOT NULL,
	rate BIGINT NOT NULL DEFAULT 0,
	available TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_room_number (number)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`, `
CREATE TABLE IF NOT EXISTS guests (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	nin_number VARCHAR(100) NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`, `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	guest_id BIGINT NOT NULL,
	room_id BIGINT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'checked_in',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_start_date (start_date),
	KEY idx_room_status (room_id, status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`, `
CREATE TABLE IF NOT EXISTS operators (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_operator_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

// Older databases carried the guest identity number in a misspelled
// ni_number column. Copy its values into nin_number and drop it.
func renameLegacyNINColumn(db *sql.DB) error {
	if !intdb.HasTable(db, "guests") {
		return nil
	}
	if !intdb.HasColumn(db, "guests", "ni_number") {
		return nil
	}
	if _, err := db.Exec(`UPDATE guests SET nin_number = ni_number WHERE nin_number IS NULL`); err != nil {
		return err
	}
	_, err := db.Exec(`ALTER TABLE guests DROP COLUMN ni_number`)
	return err
}
