package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tokens (
			id   TEXT PRIMARY KEY,
			text TEXT NOT NULL DEFAULT '',
			seq  INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS placements (
			list_id  TEXT NOT NULL,
			position INTEGER NOT NULL CHECK(position >= 0),
			token_id TEXT NOT NULL REFERENCES tokens(id) ON DELETE CASCADE,
			PRIMARY KEY (list_id, position),
			UNIQUE (token_id)
		);

		CREATE TABLE IF NOT EXISTS slots (
			list_id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_placements_list ON placements(list_id, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating session tables: %w", err)
	}

	return nil
}
