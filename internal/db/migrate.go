package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS ventures (
		id           TEXT PRIMARY KEY,
		idea         TEXT NOT NULL,
		project_name TEXT NOT NULL,
		pricing_type TEXT NOT NULL
		             CHECK(pricing_type IN ('Subscription','Commission','Freemium')),
		tagline      TEXT NOT NULL DEFAULT '',
		data_json    TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ventures_created ON ventures(created_at)`,
}
