package cards

import (
	"regexp"
	"strings"
)

// Inline definitions: "Term: Definition" or "**Term**: Definition" lines,
// optionally bulleted. The term must look like a name (3–80 chars, no
// question mark, no URL-ish text) and the definition must carry enough
// substance to answer "What is <Term>?".
//
// Markdown headings and bullets without a colon value never match; both are
// structure, not definitions.
var definitionLineRE = regexp.MustCompile(`^\s*(?:[-*•]\s+)?(?:\*\*)?([^:*?\n]{3,80}?)(?:\*\*)?\s*:\s*(.+)$`)

const (
	minDefinitionTermLen = 3
	maxDefinitionTermLen = 80
	minDefinitionLen     = 10 // definition must exceed this
)

func extractDefinitions(content string) []Candidate {
	var out []Candidate

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := definitionLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		term := strings.TrimSpace(m[1])
		definition := strings.TrimSpace(m[2])

		if len(term) < minDefinitionTermLen || len(term) > maxDefinitionTermLen {
			continue
		}
		if looksLikeURL(term) {
			continue
		}
		if len(definition) <= minDefinitionLen {
			continue
		}
		// "Question: What is X?" belongs to the explicit Q/A strategy;
		// a definition whose value is itself a question is not a definition.
		if isQAKeyword(term) || strings.HasSuffix(definition, "?") {
			continue
		}

		out = append(out, Candidate{
			Question:   "What is " + term + "?",
			Answer:     definition,
			Difficulty: Classify(definition),
			Strategy:   StrategyDefinition,
		})
	}

	return out
}

// looksLikeURL reports whether s contains URL-ish text that would make a
// nonsensical flashcard term.
func looksLikeURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "http") || strings.Contains(lower, "www.")
}

func isQAKeyword(term string) bool {
	switch strings.ToLower(term) {
	case "q", "question", "a", "answer":
		return true
	}
	return false
}
