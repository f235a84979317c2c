package database

import (
	"context"
	"database/sql"
)

// Migrate creates the schema on an already opened database.
// Exposed for test helpers that open their own connections.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	return runMigrations(ctx, db, driverOrDefault(driver))
}

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB, driver string) error {
	if driver == DriverMySQL {
		// MySQL has no CREATE INDEX IF NOT EXISTS, so the index is declared inline
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS tasks (
				id VARCHAR(36) NOT NULL PRIMARY KEY,
				title TEXT NOT NULL,
				seq BIGINT NOT NULL,
				created_at DATETIME(6) NOT NULL,
				updated_at DATETIME(6) NOT NULL,
				INDEX idx_tasks_seq (seq)
			)
		`)
		return err
	}

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			title TEXT NOT NULL,
			seq BIGINT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Enumeration is always ordered by insertion sequence
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_seq
		ON tasks(seq)
	`)
	return err
}
