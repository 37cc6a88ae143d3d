// Package lexicon holds the static keyword tables the deterministic
// understanding engine matches against. Tables are parsed from an embedded
// YAML document once at startup and never change afterwards.
package lexicon

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

type tables struct {
	Relationships  map[string][]string `yaml:"relationships"`
	Interests      []string            `yaml:"interests"`
	NameExclusions []string            `yaml:"name_exclusions"`
	Followers      map[string][]string `yaml:"followers"`
	Sentiment      struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	} `yaml:"sentiment"`
}

var (
	loaded         tables
	nameExclusions map[string]struct{}
	followerSets   map[string]map[string]struct{}
)

func init() {
	if err := yaml.Unmarshal(tablesYAML, &loaded); err != nil {
		panic(fmt.Sprintf("lexicon: parse embedded tables: %v", err))
	}
	nameExclusions = toSet(loaded.NameExclusions)
	followerSets = make(map[string]map[string]struct{}, len(loaded.Followers))
	for name, words := range loaded.Followers {
		followerSets[name] = toSet(words)
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Relationship returns the keyword list for one relationship category.
func Relationship(category string) []string {
	return loaded.Relationships[category]
}

// Interests returns the hobby keyword list in its fixed scan order.
func Interests() []string {
	return loaded.Interests
}

// ExcludedNameWord reports whether a lowercased token must never be taken
// as a person's name.
func ExcludedNameWord(word string) bool {
	_, ok := nameExclusions[word]
	return ok
}

// Followers returns the named follower stop-set, merging any additional
// sets into a single lookup table. Unknown set names yield an empty set.
func Followers(names ...string) map[string]struct{} {
	merged := make(map[string]struct{})
	for _, name := range names {
		for w := range followerSets[name] {
			merged[w] = struct{}{}
		}
	}
	return merged
}

// PositiveWords and NegativeWords back the sentiment annotator.
func PositiveWords() []string { return loaded.Sentiment.Positive }
func NegativeWords() []string { return loaded.Sentiment.Negative }
