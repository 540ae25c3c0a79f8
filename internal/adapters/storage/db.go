package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables. schedule.category_id and the registration references are
	// deliberately unconstrained: deleting a category or venue must leave the
	// rows behind so they can render with the placeholder names.
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS venue (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		place TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS category (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		year_from INTEGER NOT NULL,
		year_to INTEGER NOT NULL,
		sort_order INTEGER
	);

	CREATE TABLE IF NOT EXISTS schedule (
		id TEXT PRIMARY KEY,
		category_id TEXT NOT NULL,
		venue_id TEXT NOT NULL,
		weekday INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		is_optional INTEGER NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (venue_id) REFERENCES venue(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS registration (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		phone TEXT NOT NULL,
		created_at TEXT NOT NULL,
		venue_id TEXT NOT NULL,
		category_id TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_venue ON schedule(venue_id);
	CREATE INDEX IF NOT EXISTS idx_registration_created ON registration(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
