package extract

import (
	"strings"

	"rapport/internal/lexicon"
)

// Sentiment gives a coarse positive/negative/neutral read of the utterance.
// It is advisory only and never feeds back into the structured contract.
func Sentiment(text string) string {
	lower := strings.ToLower(text)
	positive := countHits(lower, lexicon.PositiveWords())
	negative := countHits(lower, lexicon.NegativeWords())
	switch {
	case positive > negative:
		return "positive"
	case negative > positive:
		return "negative"
	default:
		return "neutral"
	}
}

func countHits(lower string, words []string) int {
	hits := 0
	for _, word := range words {
		if strings.Contains(lower, word) {
			hits++
		}
	}
	return hits
}
