package extract

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	kidCountRE    = regexp.MustCompile(`(?i)(?:has|have)\s+(\d+)\s+(?:kids?|children)`)
	kidNamesRE    = regexp.MustCompile(`(?i:kids?|children)(?:\s+named)?\s+([A-Z][a-z]+(?:\s+and\s+[A-Z][a-z]+)*)`)
	sonDaughterRE = regexp.MustCompile(`(?i:son|daughter)\s+([A-Z][a-z]+)`)
	twinsRE       = regexp.MustCompile(`(?i:twins?)\s+(?i:boys?|girls?)\s*(?:named)?\s*([A-Z][a-z]+(?:\s+and\s+[A-Z][a-z]+)*)?`)

	siblingNameRE = regexp.MustCompile(`(?i:brother|sister)\s+([A-Z][a-z]+)`)
	siblingListRE = regexp.MustCompile(`(?i:siblings?)\s+(?:named)?\s+([A-Z][a-z]+(?:\s+and\s+[A-Z][a-z]+)*)`)

	nameListSplitRE = regexp.MustCompile(`\s+and\s+`)
)

// Kids extracts children names, accumulating across all patterns. A bare
// count ("has 2 kids") synthesizes "child 1".."child N" placeholders; a
// twins mention without names contributes nothing.
func Kids(text string) []string {
	var kids []string
	if m := kidCountRE.FindStringSubmatch(text); m != nil {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			for i := 1; i <= count; i++ {
				kids = append(kids, fmt.Sprintf("child %d", i))
			}
		}
	}
	for _, re := range []*regexp.Regexp{kidNamesRE, sonDaughterRE, twinsRE} {
		m := re.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}
		kids = append(kids, nameListSplitRE.Split(m[1], -1)...)
	}
	return kids
}

// Siblings extracts sibling names. A bare count ("has 3 siblings") is
// recognized by the cascade but deliberately yields no placeholder entries,
// unlike kid counts.
func Siblings(text string) []string {
	var siblings []string
	if m := siblingNameRE.FindStringSubmatch(text); m != nil {
		siblings = append(siblings, nameListSplitRE.Split(m[1], -1)...)
	}
	if m := siblingListRE.FindStringSubmatch(text); m != nil {
		siblings = append(siblings, nameListSplitRE.Split(m[1], -1)...)
	}
	return siblings
}
