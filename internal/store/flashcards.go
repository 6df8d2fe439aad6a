package store

import (
	"context"
	"fmt"
	"time"
)

// ReplaceFlashcards swaps a note's flashcards for a new set atomically.
// Regeneration runs through here so stale cards never linger.
func (s *SQLiteStore) ReplaceFlashcards(ctx context.Context, noteID int64, cards []*Flashcard) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM flashcards WHERE note_id = ?`, noteID); err != nil {
		return fmt.Errorf("clearing flashcards for note %d: %w", noteID, err)
	}

	now := time.Now().UTC()
	for _, c := range cards {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO flashcards (note_id, question, answer, difficulty, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			noteID, c.Question, c.Answer, c.Difficulty, now)
		if err != nil {
			return fmt.Errorf("inserting flashcard for note %d: %w", noteID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting flashcard id: %w", err)
		}
		c.ID = id
		c.NoteID = noteID
		c.CreatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing flashcards for note %d: %w", noteID, err)
	}
	return nil
}

// ListFlashcards returns a note's flashcards in insertion order.
func (s *SQLiteStore) ListFlashcards(ctx context.Context, noteID int64) ([]*Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, note_id, question, answer, difficulty, created_at
		 FROM flashcards WHERE note_id = ? ORDER BY id`, noteID)
	if err != nil {
		return nil, fmt.Errorf("listing flashcards for note %d: %w", noteID, err)
	}
	defer rows.Close()

	var cards []*Flashcard
	for rows.Next() {
		var c Flashcard
		if err := rows.Scan(&c.ID, &c.NoteID, &c.Question, &c.Answer, &c.Difficulty, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning flashcard: %w", err)
		}
		cards = append(cards, &c)
	}
	return cards, rows.Err()
}

// Stats returns note/flashcard counts and the difficulty distribution.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByDifficulty: make(map[string]int64)}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`).Scan(&st.NoteCount); err != nil {
		return nil, fmt.Errorf("counting notes: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flashcards`).Scan(&st.FlashcardCount); err != nil {
		return nil, fmt.Errorf("counting flashcards: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT difficulty, COUNT(*) FROM flashcards GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("counting by difficulty: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d string
		var n int64
		if err := rows.Scan(&d, &n); err != nil {
			return nil, fmt.Errorf("scanning difficulty count: %w", err)
		}
		st.ByDifficulty[d] = n
	}
	return st, rows.Err()
}
