package cards

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading concepts: a markdown heading of level 2–4 names a concept; the
// following up-to-three non-empty, non-heading lines form the answer.
//
// Substantial concepts (answer > 100 chars) deliberately emit a second
// "How does X work?" variant with difficulty forced to HARD. The two
// questions differ in text, so both survive the aggregator's dedup.
var conceptHeadingRE = regexp.MustCompile(`^(#{2,4})\s+(.+)$`)

const (
	conceptBodyLines     = 3
	maxConceptAnswerLen  = 500
	hardVariantThreshold = 100
)

func extractHeadingConcepts(content string) []Candidate {
	var out []Candidate
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		m := conceptHeadingRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		concept := strings.TrimSpace(m[2])
		if concept == "" {
			continue
		}

		answer := collectConceptBody(lines, i+1)
		if answer == "" {
			continue
		}

		out = append(out, Candidate{
			Question:   "What is " + concept + "?",
			Answer:     answer,
			Difficulty: Classify(answer),
			Strategy:   StrategyHeadingConcept,
		})

		if len(answer) > hardVariantThreshold {
			out = append(out, Candidate{
				Question:   "How does " + concept + " work?",
				Answer:     answer,
				Difficulty: Hard,
				Strategy:   StrategyHeadingConcept,
			})
		}
	}

	return out
}

// collectConceptBody joins the next few non-empty, non-heading lines after a
// heading, capped at maxConceptAnswerLen.
func collectConceptBody(lines []string, start int) string {
	var parts []string
	for j := start; j < len(lines) && len(parts) < conceptBodyLines; j++ {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			break
		}
		parts = append(parts, trimmed)
	}
	return truncateRunes(strings.Join(parts, " "), maxConceptAnswerLen)
}

// truncateRunes cuts s to at most max bytes without splitting a UTF-8 rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
