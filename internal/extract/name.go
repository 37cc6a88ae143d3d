// Package extract holds the field extractors of the deterministic
// understanding engine. Every extractor is a pure function over the raw
// input string; none depends on another having run, and all are total:
// adversarial or empty input yields a default, never an error.
package extract

import (
	"regexp"
	"strings"

	"rapport/internal/contract"
	"rapport/internal/lexicon"
)

// nameRule pairs a capture pattern with the stop-set that disqualifies a
// candidate when the very next token is in it. Go's regexp has no negative
// lookahead, so the follower check happens after the match.
type nameRule struct {
	re   *regexp.Regexp
	stop map[string]struct{}
}

// Ordered most to least reliable; the first rule that produces a
// non-excluded candidate wins.
var nameRules = []nameRule{
	{re: regexp.MustCompile(`(?i:met|talked to|saw|bumped into|spoke with|chatted with|ran into)\s+([A-Z][a-z]+)`), stop: lexicon.Followers("time")},
	{re: regexp.MustCompile(`(?i:me and|i and)\s+([A-Z][a-z]+)`), stop: lexicon.Followers("activity")},
	{re: regexp.MustCompile(`(?i:my|our)\s+(?i:friend|coworker|colleague|neighbor|sister|brother|cousin|mom|dad|mother|father)\s+([A-Z][a-z]+)`)},
	{re: regexp.MustCompile(`([A-Z][a-z]+)\s+(?i:is|was|has|works|got|just|recently|who)\b`)},
	{re: regexp.MustCompile(`([A-Z][a-z]+)'s\s+(?i:birthday|job|house|car|phone|email)`)},
	{re: regexp.MustCompile(`(?i:with)\s+([A-Z][a-z]+)`), stop: lexicon.Followers("time", "person")},
	{re: regexp.MustCompile(`\b([A-Z][a-z]{2,})\b`), stop: lexicon.Followers("time", "place")},
}

var nextWordRE = regexp.MustCompile(`^\s+([A-Za-z']+)`)

// Name extracts a person's name, or the "Unknown Person" placeholder when
// no rule produces an acceptable candidate.
func Name(text string) string {
	for _, rule := range nameRules {
		cand := rule.firstAllowed(text)
		if cand == "" {
			continue
		}
		if !lexicon.ExcludedNameWord(strings.ToLower(cand)) {
			return cand
		}
	}
	return contract.UnknownName
}

// firstAllowed returns the rule's first capture whose following token is
// not in the rule's stop-set.
func (r nameRule) firstAllowed(text string) string {
	for _, m := range r.re.FindAllStringSubmatchIndex(text, -1) {
		if m[2] < 0 {
			continue
		}
		cand := text[m[2]:m[3]]
		if r.stop != nil {
			if next := nextWord(text[m[3]:]); next != "" {
				if _, blocked := r.stop[next]; blocked {
					continue
				}
			}
		}
		return cand
	}
	return ""
}

func nextWord(rest string) string {
	m := nextWordRE.FindStringSubmatch(rest)
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}
