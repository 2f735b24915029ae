package domain

import (
	"slices"
	"strings"
)

// Tag is a display aggregate of one tag name and its usage count across
// a document snapshot. Identity is the name alone: two Tags with equal
// names are the same key even when their counts differ, so a counting
// map collapses them with last-write-wins semantics for the count.
type Tag struct {
	// Name is the lower-case tag name and the identity key.
	Name string

	// Count is how many documents carry the tag.
	Count int
}

// SearchTerm exposes the name for substring search over tag lists.
func (t Tag) SearchTerm() string { return t.Name }

// CountTags collapses the tag sets of a document snapshot into per-name
// usage counts, sorted by name.
func CountTags(documents []*Document) []Tag {
	counts := make(map[string]int)
	for _, document := range documents {
		for _, name := range document.Tags() {
			counts[name]++
		}
	}

	tags := make([]Tag, 0, len(counts))
	for name, count := range counts {
		tags = append(tags, Tag{Name: name, Count: count})
	}
	slices.SortFunc(tags, func(a, b Tag) int {
		return strings.Compare(a.Name, b.Name)
	})
	return tags
}
