package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT    NOT NULL,
		type       TEXT    NOT NULL,
		location   TEXT    NOT NULL,
		price      REAL    NOT NULL,
		size       TEXT    NOT NULL,
		bedrooms   INTEGER NOT NULL DEFAULT 0,
		bathrooms  INTEGER NOT NULL DEFAULT 0,
		features   TEXT    NOT NULL,
		status     TEXT    NOT NULL,
		image_urls TEXT    NOT NULL DEFAULT '[]',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		username   TEXT    NOT NULL UNIQUE,
		salt       TEXT    NOT NULL,
		hash       TEXT    NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS auth_log (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp  DATETIME NOT NULL,
		username   TEXT     NOT NULL,
		success    INTEGER  NOT NULL,
		ip         TEXT     NOT NULL DEFAULT '',
		user_agent TEXT     NOT NULL DEFAULT ''
	)`,
}

// migrate runs all migrations in order.
func migrate(database *sql.DB) error {
	for i, m := range migrations {
		if _, err := database.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
