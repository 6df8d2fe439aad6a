package cards

import "strings"

// List summaries: a run of two-or-more consecutive plain list items (no
// question mark ending) collapses into one generic key-points card. Only
// runs whose joined text lands in a sane size band are worth a card.
const (
	listSummaryQuestion = "List the key points about this topic."
	minListSummaryItems = 2
	minListSummaryLen   = 10
	maxListSummaryLen   = 500
)

func extractListSummary(content string) []Candidate {
	var out []Candidate
	var items []string

	flush := func() {
		if len(items) >= minListSummaryItems {
			answer := strings.Join(items, "; ")
			if len(answer) >= minListSummaryLen && len(answer) <= maxListSummaryLen {
				out = append(out, Candidate{
					Question:   listSummaryQuestion,
					Answer:     answer,
					Difficulty: Classify(answer),
					Strategy:   StrategyListSummary,
				})
			}
		}
		items = nil
	}

	for _, line := range strings.Split(content, "\n") {
		m := topListItemRE.FindStringSubmatch(line)
		if m == nil {
			flush()
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" || strings.HasSuffix(text, "?") {
			// Question items belong to the list Q/A strategy.
			flush()
			continue
		}
		items = append(items, text)
	}
	flush()

	return out
}
