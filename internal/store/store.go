// Package store provides the SQLite storage layer for notemill.
//
// A single database file holds notes (already-redacted content plus reading
// time) and the flashcards generated from them. The content-processing core
// never touches this package; callers run the pipeline first and persist the
// result here.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultDBPath is the default database location.
const DefaultDBPath = "~/.notemill/notemill.db"

// Note is a stored note. Content is always the redacted form — raw content
// never reaches the database.
type Note struct {
	ID             int64
	Title          string
	Content        string
	ReadingMinutes int
	ContentHash    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Flashcard is a persisted, validated flashcard tied to its note.
type Flashcard struct {
	ID         int64
	NoteID     int64
	Question   string
	Answer     string
	Difficulty string
	CreatedAt  time.Time
}

// ListOpts controls pagination for List operations.
type ListOpts struct {
	Limit  int
	Offset int
}

// Stats holds observability counts for the store.
type Stats struct {
	NoteCount      int64
	FlashcardCount int64
	ByDifficulty   map[string]int64
}

// StoreConfig holds configuration for NewStore.
type StoreConfig struct {
	DBPath string
}

// Store defines the persistence interface the CLI and MCP server consume.
type Store interface {
	AddNote(ctx context.Context, n *Note) (int64, error)
	GetNote(ctx context.Context, id int64) (*Note, error)
	ListNotes(ctx context.Context, opts ListOpts) ([]*Note, error)
	UpdateNote(ctx context.Context, n *Note) error
	DeleteNote(ctx context.Context, id int64) error
	FindNoteByHash(ctx context.Context, hash string) (*Note, error)

	ReplaceFlashcards(ctx context.Context, noteID int64, cards []*Flashcard) error
	ListFlashcards(ctx context.Context, noteID int64) ([]*Flashcard, error)

	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// SQLiteStore implements Store.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new SQLite-backed Store.
// Pass ":memory:" for in-memory databases (testing).
func NewStore(cfg StoreConfig) (Store, error) {
	if cfg.DBPath == "" {
		cfg.DBPath = expandPath(DefaultDBPath)
	}

	if cfg.DBPath != ":memory:" {
		dir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db, dbPath: cfg.DBPath}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
