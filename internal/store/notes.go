package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// AddNote inserts a note and returns its ID.
func (s *SQLiteStore) AddNote(ctx context.Context, n *Note) (int64, error) {
	if n.ContentHash == "" {
		n.ContentHash = HashNoteContent(n.Title, n.Content)
	}
	if n.ReadingMinutes < 1 {
		n.ReadingMinutes = 1
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, reading_minutes, content_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.Title, n.Content, n.ReadingMinutes, n.ContentHash, now, now)
	if err != nil {
		return 0, fmt.Errorf("inserting note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting note id: %w", err)
	}
	n.ID = id
	n.CreatedAt = now
	n.UpdatedAt = now
	return id, nil
}

// GetNote fetches a note by ID.
func (s *SQLiteStore) GetNote(ctx context.Context, id int64) (*Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, reading_minutes, content_hash, created_at, updated_at
		 FROM notes WHERE id = ?`, id)
	return scanNote(row)
}

// FindNoteByHash fetches a note by its content hash, or ErrNotFound.
func (s *SQLiteStore) FindNoteByHash(ctx context.Context, hash string) (*Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, reading_minutes, content_hash, created_at, updated_at
		 FROM notes WHERE content_hash = ?`, hash)
	return scanNote(row)
}

// ListNotes returns notes ordered by most recently updated.
func (s *SQLiteStore) ListNotes(ctx context.Context, opts ListOpts) ([]*Note, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, reading_minutes, content_hash, created_at, updated_at
		 FROM notes ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.ReadingMinutes,
			&n.ContentHash, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

// UpdateNote rewrites a note's title, content, reading time, and hash.
func (s *SQLiteStore) UpdateNote(ctx context.Context, n *Note) error {
	if n.ContentHash == "" {
		n.ContentHash = HashNoteContent(n.Title, n.Content)
	}
	if n.ReadingMinutes < 1 {
		n.ReadingMinutes = 1
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, reading_minutes = ?, content_hash = ?,
		 updated_at = ? WHERE id = ?`,
		n.Title, n.Content, n.ReadingMinutes, n.ContentHash, now, n.ID)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", n.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update of note %d: %w", n.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("note %d: %w", n.ID, ErrNotFound)
	}
	n.UpdatedAt = now
	return nil
}

// DeleteNote removes a note; its flashcards cascade.
func (s *SQLiteStore) DeleteNote(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of note %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

func scanNote(row *sql.Row) (*Note, error) {
	var n Note
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.ReadingMinutes,
		&n.ContentHash, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return &n, nil
}
