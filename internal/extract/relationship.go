package extract

import (
	"strings"

	"rapport/internal/contract"
	"rapport/internal/lexicon"
)

// relationshipOrder is the classification priority; the first category with
// a keyword hit wins, so "my sister's coworker" still reads as family.
var relationshipOrder = []string{
	contract.RelFamily,
	contract.RelPartner,
	contract.RelCoworker,
	contract.RelNeighbor,
	contract.RelFriend,
}

// Relationship classifies how the speaker relates to the person mentioned,
// defaulting to acquaintance.
func Relationship(text string) string {
	lower := strings.ToLower(text)
	for _, category := range relationshipOrder {
		for _, keyword := range lexicon.Relationship(category) {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return contract.RelAcquaintance
}
