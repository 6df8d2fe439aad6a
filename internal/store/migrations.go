package store

import "fmt"

// migrate creates all tables if they don't exist.
func (s *SQLiteStore) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			title           TEXT NOT NULL DEFAULT '',
			content         TEXT NOT NULL,
			reading_minutes INTEGER NOT NULL DEFAULT 1,
			content_hash    TEXT UNIQUE NOT NULL,
			created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS flashcards (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id    INTEGER NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'medium',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_flashcards_note ON flashcards(note_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	return nil
}
