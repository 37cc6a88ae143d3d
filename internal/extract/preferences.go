package extract

import (
	"regexp"
	"strings"

	"rapport/internal/lexicon"
)

// The like capture ends at a sentence boundary or where a dislike verb
// takes over, so "loves hiking and can't stand spicy food" splits cleanly
// into one like and one dislike.
var likePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:likes?|loves?|enjoys?|into)\s+([a-z\s,]+?)(?:\s+and\s+(?:hates?|dislikes?|can't stand|doesn't like)|\.|,|$)`),
	regexp.MustCompile(`(?i)(?:favorite|fav)\s+(?:thing|food|drink|activity|hobby)\s+is\s+([a-z\s]+)`),
}

var dislikePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:hates?|dislikes?|can't stand|doesn't like)\s+([a-z\s,]+?)(?:\.|,|$)`),
	regexp.MustCompile(`(?i)(?:not a fan of|not into)\s+([a-z\s]+)`),
}

var itemSplitRE = regexp.MustCompile(`,|\s+and\s+`)

// Likes extracts things the person enjoys, accumulating across patterns.
func Likes(text string) []string {
	return collectItems(text, likePatterns)
}

// Dislikes extracts things the person avoids, accumulating across patterns.
func Dislikes(text string) []string {
	return collectItems(text, dislikePatterns)
}

func collectItems(text string, patterns []*regexp.Regexp) []string {
	var items []string
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, item := range itemSplitRE.Split(m[1], -1) {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// Interests scans for known hobby keywords anywhere in the input; every
// keyword present is reported, in lexicon order.
func Interests(text string) []string {
	lower := strings.ToLower(text)
	var interests []string
	for _, keyword := range lexicon.Interests() {
		if strings.Contains(lower, keyword) {
			interests = append(interests, keyword)
		}
	}
	return interests
}
