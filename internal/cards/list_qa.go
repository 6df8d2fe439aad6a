package cards

import (
	"regexp"
	"strings"
)

// List-grouped Q/A: a top-level bullet or numbered item ending in "?" opens a
// pending question; indented sub-bullets beneath it accumulate as answer
// fragments until the next top-level item, non-list content, or end of input.
var (
	topListItemRE = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+(.+)$`)
	subListItemRE = regexp.MustCompile(`^\s+(?:[-*•]|\d+[.)])\s+(.+)$`)
)

const minListAnswerLen = 3 // joined fragments must exceed this

func extractListQA(content string) []Candidate {
	var out []Candidate
	var pending string
	var fragments []string

	flush := func() {
		if pending == "" || len(fragments) == 0 {
			pending = ""
			fragments = nil
			return
		}
		answer := strings.TrimSpace(strings.Join(fragments, "\n"))
		if len(answer) > minListAnswerLen {
			out = append(out, Candidate{
				Question:   pending,
				Answer:     answer,
				Difficulty: Classify(answer),
				Strategy:   StrategyListQA,
			})
		}
		pending = ""
		fragments = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := topListItemRE.FindStringSubmatch(line); m != nil {
			flush()
			text := strings.TrimSpace(m[1])
			if strings.HasSuffix(text, "?") {
				pending = text
			}
			continue
		}

		if m := subListItemRE.FindStringSubmatch(line); m != nil {
			if pending != "" {
				fragments = append(fragments, strings.TrimSpace(m[1]))
			}
			continue
		}

		// Non-list content ends the list.
		flush()
	}

	// Unmatched trailing state at end of input flushes the same way.
	flush()

	return out
}
