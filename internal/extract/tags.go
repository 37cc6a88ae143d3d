package extract

import "strings"

const maxTagLength = 20

// Tags derives descriptive tags from the other extractors rather than from
// patterns of its own: parent when kids are mentioned, social for likes or
// nightlife hints, professional when a job is present. Tags that are too
// long or that echo meeting phrasing are filtered out.
func Tags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	if len(Kids(text)) > 0 {
		tags = append(tags, "parent")
	}
	if len(Likes(text)) > 0 || strings.Contains(lower, "bar") || strings.Contains(lower, "drinks") {
		tags = append(tags, "social")
	}
	if Job(text) != "" {
		tags = append(tags, "professional")
	}

	filtered := tags[:0]
	for _, tag := range tags {
		if len(tag) >= maxTagLength || strings.Contains(tag, "met") || strings.Contains(tag, "yesterday") {
			continue
		}
		filtered = append(filtered, tag)
	}
	return filtered
}
