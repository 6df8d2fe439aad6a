// Package cards mines study flashcards out of note content.
//
// Extraction is heuristic, not grammar-based: five independent regex
// strategies scan the text for distinct shapes (explicit Q/A blocks, inline
// definitions, list-grouped Q/A, heading concepts, plain list summaries) and
// emit candidates. An aggregator merges the strategy outputs, deduplicates by
// normalized question, filters out junk, and caps the result. A final
// validator trims and bounds every candidate before it is handed to the
// caller for persistence.
//
// The package is pure: no I/O, no shared mutable state. All compiled patterns
// are package-level values, safe for concurrent use. Callers are expected to
// pass redacted content only — nothing here re-checks for sensitive data.
package cards

import "strings"

// Difficulty is the ordinal complexity classification of an answer.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the lowercase name used in storage and tool output.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a stored name back to a Difficulty.
// Unrecognized values report ok=false; callers coerce those to Medium.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return Medium, false
	}
}

// Candidate is an unvalidated flashcard produced by exactly one strategy.
type Candidate struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
	Strategy   string     `json:"strategy"`
}

// Flashcard is a validated candidate, ready for persistence by the caller.
// Question is 1–255 chars and Answer 3–5000 chars, both trimmed.
type Flashcard struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Difficulty Difficulty `json:"difficulty"`
}

// Strategy is one independent, pure pattern-matching pass over content.
// Strategies never see each other's output; all merging happens in Aggregate.
type Strategy struct {
	Name    string
	Extract func(content string) []Candidate
}
