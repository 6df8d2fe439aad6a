package redact

import "strings"

// wordsPerMinute is the fixed reading rate used for estimates.
const wordsPerMinute = 200

// EstimateReadingMinutes returns the estimated reading time for content in
// whole minutes: word count divided by 200 wpm, rounded up, never below 1.
func EstimateReadingMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
