// Package pipeline orchestrates the content-processing steps applied to a
// note body at create, update, and import time: redaction, reading-time
// estimation, flashcard extraction, and final validation.
//
// Process is a pure transform — it persists nothing and never fails. The
// calling workflow decides what to do with the result (including the valid
// outcome of zero flashcards). Extraction only ever sees redacted content,
// so no sensitive value can leak into a generated flashcard.
package pipeline

import (
	"github.com/notemill/notemill/internal/cards"
	"github.com/notemill/notemill/internal/redact"
)

// Result holds everything the pipeline derives from one note body.
type Result struct {
	// Redacted is the note content with sensitive substrings replaced by
	// sentinel tokens. This is what callers should store and display.
	Redacted string

	// ReadingMinutes is the estimated reading time, always >= 1.
	ReadingMinutes int

	// Cards are the validated flashcards mined from the redacted content.
	// May be empty; that is a normal outcome, not an error.
	Cards []cards.Flashcard
}

// Config bounds flashcard generation.
type Config struct {
	// MinContentLength gates generation: shorter notes yield no cards.
	MinContentLength int
	// MaxCards caps generated cards per note.
	MaxCards int
}

// DefaultConfig returns the recommended pipeline settings.
func DefaultConfig() Config {
	ec := cards.DefaultEngineConfig()
	return Config{
		MinContentLength: ec.MinContentLength,
		MaxCards:         ec.MaxCards,
	}
}

// Pipeline applies the full content-processing sequence. Safe for concurrent
// use: all state is immutable after construction.
type Pipeline struct {
	engine *cards.Engine
}

// New creates a pipeline with the given config (zero fields use defaults).
func New(cfg Config) *Pipeline {
	return &Pipeline{
		engine: cards.NewEngine(cards.EngineConfig{
			MinContentLength: cfg.MinContentLength,
			MaxCards:         cfg.MaxCards,
		}),
	}
}

// Process runs redaction, estimation, extraction, and validation over one
// raw note body. The optional title feeds the extraction fallback; pass ""
// when the note has none.
func (p *Pipeline) Process(raw, title string) Result {
	redacted := redact.Redact(raw)

	candidates := p.engine.GenerateWithTitle(redacted, title)
	flashcards := make([]cards.Flashcard, 0, len(candidates))
	for _, c := range candidates {
		if fc, ok := cards.Validate(c); ok {
			flashcards = append(flashcards, fc)
		}
	}

	return Result{
		Redacted:       redacted,
		ReadingMinutes: redact.EstimateReadingMinutes(redacted),
		Cards:          flashcards,
	}
}

// Candidates exposes the raw candidate view (with strategy attribution) for
// preview workflows that want to show where each card came from. The same
// redaction-first rule applies.
func (p *Pipeline) Candidates(raw, title string) (string, []cards.Candidate) {
	redacted := redact.Redact(raw)
	return redacted, p.engine.GenerateWithTitle(redacted, title)
}
