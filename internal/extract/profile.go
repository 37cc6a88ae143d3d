package extract

import (
	"time"

	"rapport/internal/contract"
)

// Profile runs every field extractor once against the same input and
// assembles the result. Extraction order does not affect the output; the
// caller supplies the clock so results stay reproducible under test.
func Profile(text string, now time.Time) contract.ExtractedProfile {
	profile := contract.ExtractedProfile{
		Name:            Name(text),
		Age:             Age(text),
		Phone:           Phone(text),
		Email:           Email(text),
		Job:             Job(text),
		Relationship:    Relationship(text),
		Kids:            Kids(text),
		Siblings:        Siblings(text),
		Likes:           Likes(text),
		Dislikes:        Dislikes(text),
		Interests:       Interests(text),
		Tags:            Tags(text),
		Notes:           text,
		LastContactDate: now.UTC().Format(time.RFC3339),
		IsNew:           true,
	}
	profile.Normalize()
	return profile
}
