package cards

import "strings"

// viableQuestionPrefixes are accepted in place of a literal "?" by the
// validity filter. "list" covers the list-summary strategy's fixed question,
// which is imperative rather than interrogative.
var viableQuestionPrefixes = []string{"what is", "how to", "define", "list"}

// Aggregate merges per-strategy candidate lists into one bounded result:
//
//  1. Concatenate in the given order — the engine's documented strategy
//     order, which therefore decides dedup survivorship.
//  2. Deduplicate by trimmed, lowercased question text; first wins.
//  3. Drop candidates that fail the minimal validity filter.
//  4. Cap at maxCards (0 means uncapped).
//
// Dedup runs before the filter, matching the pipeline's documented step
// order: a duplicate of a filtered-out candidate is still a duplicate.
func Aggregate(lists [][]Candidate, maxCards int) []Candidate {
	var merged []Candidate
	for _, l := range lists {
		merged = append(merged, l...)
	}

	seen := make(map[string]bool, len(merged))
	deduped := make([]Candidate, 0, len(merged))
	for _, c := range merged {
		key := strings.ToLower(strings.TrimSpace(c.Question))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}

	out := make([]Candidate, 0, len(deduped))
	for _, c := range deduped {
		if !isViable(c) {
			continue
		}
		out = append(out, c)
		if maxCards > 0 && len(out) >= maxCards {
			break
		}
	}

	return out
}

// isViable is the minimal-validity filter: the question must read like a
// question (contains "?" or starts with a known prompt prefix) and the
// answer must have substance.
func isViable(c Candidate) bool {
	q := strings.ToLower(strings.TrimSpace(c.Question))
	if len(strings.TrimSpace(c.Answer)) < 3 {
		return false
	}
	if strings.Contains(q, "?") {
		return true
	}
	for _, prefix := range viableQuestionPrefixes {
		if strings.HasPrefix(q, prefix) {
			return true
		}
	}
	return false
}
