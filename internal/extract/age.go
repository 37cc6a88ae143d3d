package extract

import (
	"regexp"
	"strconv"
)

// Only explicit numeric mentions count as an age; the first matching
// pattern decides, and implausible values are dropped rather than retried.
var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:she's|he's|they're|is)\s+(?:about|around|probably)?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d+)\s+years?\s+old`),
	regexp.MustCompile(`(?i)(\d+)ish`),
	regexp.MustCompile(`(?i)age\s+(\d+)`),
	regexp.MustCompile(`(?i)around\s+(\d+)`),
}

const maxPlausibleAge = 120

// Age returns the mentioned age, or nil when nothing plausible is found.
func Age(text string) *int {
	for _, re := range agePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err != nil || age >= maxPlausibleAge {
			return nil
		}
		return &age
	}
	return nil
}
