package cards

import "strings"

// Field bounds enforced at the persistence gate. The caps match the stricter
// of the storage schema's two historical variants and are applied uniformly.
const (
	MinQuestionLength = 5
	MaxQuestionLength = 255
	MinAnswerLength   = 3
	MaxAnswerLength   = 5000
)

// Validate is the final gate before a candidate reaches the persistence
// layer. Malformed candidates report ok=false and are dropped silently —
// there is no error path. Overlong fields are truncated, never rejected, and
// an out-of-range difficulty is coerced to Medium.
func Validate(c Candidate) (Flashcard, bool) {
	question := strings.TrimSpace(c.Question)
	answer := strings.TrimSpace(c.Answer)

	if len(question) < MinQuestionLength || len(answer) < MinAnswerLength {
		return Flashcard{}, false
	}

	question = truncateRunes(question, MaxQuestionLength)
	answer = truncateRunes(answer, MaxAnswerLength)

	difficulty := c.Difficulty
	if difficulty < Easy || difficulty > Hard {
		difficulty = Medium
	}

	return Flashcard{
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
	}, true
}
