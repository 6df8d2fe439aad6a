package cards

import (
	"regexp"
	"strings"
)

// Explicit Q/A blocks: a "Q:"/"Question:" line (or a ❓ marker) immediately
// followed by an "A:"/"Answer:" line (or ✅). The answer span runs until a
// blank line or the next question marker.
var (
	explicitQuestionRE = regexp.MustCompile(`(?i)^\s*(?:q(?:uestion)?:|❓)\s*(.+)$`)
	explicitAnswerRE   = regexp.MustCompile(`(?i)^\s*(?:a(?:nswer)?:|✅)\s*(.+)$`)
)

const (
	minExplicitQuestionLen = 5 // question must exceed this
	minExplicitAnswerLen   = 3 // answer must exceed this
)

func extractExplicitQA(content string) []Candidate {
	var out []Candidate
	lines := strings.Split(content, "\n")

	i := 0
	for i < len(lines) {
		qm := explicitQuestionRE.FindStringSubmatch(lines[i])
		if qm == nil {
			i++
			continue
		}
		question := strings.TrimSpace(qm[1])

		if i+1 >= len(lines) {
			break
		}
		am := explicitAnswerRE.FindStringSubmatch(lines[i+1])
		if am == nil {
			// Question without an immediate answer line — not a block.
			i++
			continue
		}

		parts := []string{strings.TrimSpace(am[1])}
		j := i + 2
		for j < len(lines) {
			if strings.TrimSpace(lines[j]) == "" {
				break
			}
			if explicitQuestionRE.MatchString(lines[j]) {
				break
			}
			parts = append(parts, strings.TrimSpace(lines[j]))
			j++
		}

		answer := strings.TrimSpace(strings.Join(parts, " "))
		if len(question) > minExplicitQuestionLen && len(answer) > minExplicitAnswerLen {
			out = append(out, Candidate{
				Question:   question,
				Answer:     answer,
				Difficulty: Classify(answer),
				Strategy:   StrategyExplicitQA,
			})
		}

		i = j
	}

	return out
}
