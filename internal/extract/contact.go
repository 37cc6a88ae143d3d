package extract

import "regexp"

var (
	phoneAnchoredRE = regexp.MustCompile(`(?i)(?:phone|number|call|text)(?:\s+is|\s+:)?\s*([0-9\-()\s.]{10,})`)
	phoneBareRE     = regexp.MustCompile(`([0-9\-()\s.]{10,})`)
	phoneStripRE    = regexp.MustCompile(`[^0-9\-()]`)
	emailRE         = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
)

// Phone extracts a phone number, preferring a keyword-anchored mention over
// a bare digit run. The result keeps only digits, hyphens and parentheses;
// anything shorter than ten characters after normalization is discarded.
func Phone(text string) string {
	m := phoneAnchoredRE.FindStringSubmatch(text)
	if m == nil {
		m = phoneBareRE.FindStringSubmatch(text)
	}
	if m == nil {
		return ""
	}
	phone := phoneStripRE.ReplaceAllString(m[1], "")
	if len(phone) < 10 {
		return ""
	}
	return phone
}

// Email extracts the first email address in the text, empty when absent.
func Email(text string) string {
	return emailRE.FindString(text)
}
