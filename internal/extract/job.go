package extract

import (
	"regexp"
	"strings"
)

// First match wins. The "<X> at <Org>" rule requires a capitalized
// organization so "at the gym" does not read as employment.
var jobPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)works?\s+(?:as\s+)?(?:a\s+)?([a-z\s]+?)(?:\s+at|\s+for|\.|,|$)`),
	regexp.MustCompile(`(?i)(?:job|profession|career|work)\s+(?:as\s+)?(?:a\s+)?([a-z\s]+?)(?:\s+at|\s+for|\.|,|$)`),
	regexp.MustCompile(`(?i:is\s+)?(?:a\s+)?\b([a-z\s]+?)\s+at\s+[A-Z]`),
	regexp.MustCompile(`(?i)promoted\s+to\s+([a-z\s]+?)(?:\s+at|\s+for|\.|,|$)`),
}

// Job extracts a job title or profession, empty when none is mentioned.
func Job(text string) string {
	for _, re := range jobPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if job := strings.TrimSpace(m[1]); job != "" {
			return job
		}
	}
	return ""
}
