package database

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables if they do not exist yet. Safe to run on
// every startup.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_token TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS results (
			id SERIAL PRIMARY KEY,
			participant_id TEXT NOT NULL,
			participant_name TEXT NOT NULL,
			event TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			time TEXT,
			rank INTEGER,
			points INTEGER,
			status TEXT NOT NULL DEFAULT 'published',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (participant_id, event, category)
		);

		CREATE INDEX IF NOT EXISTS idx_results_event ON results(event);
		CREATE INDEX IF NOT EXISTS idx_results_category ON results(category);

		CREATE TABLE IF NOT EXISTS appeals (
			id SERIAL PRIMARY KEY,
			participant_id TEXT NOT NULL,
			event_id TEXT NOT NULL,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			reason TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new'
				CHECK (status IN ('new', 'in_review', 'accepted', 'rejected')),
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_appeals_status ON appeals(status);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
