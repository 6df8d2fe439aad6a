package cards

import "strings"

// Classification thresholds. An answer is EASY when it is both short and
// few-worded, MEDIUM in the middle band, HARD beyond that — unless it spans
// multiple sentences, which wins outright.
const (
	easyMaxLength   = 50
	easyMaxWords    = 10
	mediumMaxLength = 150
	mediumMaxWords  = 30
)

// Classify maps an answer to an ordinal difficulty.
//
// The sentence-count check runs first and dominates: more than one sentence
// terminator ('.', '!', '?') makes the answer HARD regardless of length.
// This precedence is deliberate — a short two-sentence answer still requires
// recalling two separate statements.
func Classify(answer string) Difficulty {
	trimmed := strings.TrimSpace(answer)
	length := len(trimmed)
	words := len(strings.Fields(trimmed))
	sentences := strings.Count(trimmed, ".") + strings.Count(trimmed, "!") + strings.Count(trimmed, "?")

	switch {
	case sentences > 1:
		return Hard
	case length < easyMaxLength && words < easyMaxWords:
		return Easy
	case length < mediumMaxLength && words < mediumMaxWords:
		return Medium
	default:
		return Hard
	}
}
