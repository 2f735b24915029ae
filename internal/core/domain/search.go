package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Searchable is any item exposing one string for substring search.
type Searchable interface {
	// SearchTerm returns the string matched against query terms.
	SearchTerm() string
}

// FilterByTerm returns the items whose search term contains term as a
// case-sensitive substring. An empty term matches everything. The input
// is untouched; a new slice is returned each call.
func FilterByTerm[T Searchable](items []T, term string) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(item.SearchTerm(), term) {
			matched = append(matched, item)
		}
	}
	return matched
}

// FilterByTerms applies every term's filter to the result of the
// previous one, so the result is the logical AND across terms. Term
// order only affects intermediate sizes, never the final set. An empty
// term list matches everything.
func FilterByTerms[T Searchable](items []T, terms []string) []T {
	matched := slices.Clone(items)
	for _, term := range terms {
		matched = FilterByTerm(matched, term)
	}
	return matched
}

// SortField names a document field the display layer can sort by. The
// set is closed: adding a field means extending the switch in Before,
// and an unknown field is an explicit error instead of a silent default.
type SortField string

// Available sort fields.
const (
	// SortByFilename orders documents by filename.
	SortByFilename SortField = "filename"

	// SortByTaggingStatus orders documents by filing progress.
	SortByTaggingStatus SortField = "taggingstatus"
)

// IsValid returns true if the sort field is recognised.
func (f SortField) IsValid() bool {
	switch f {
	case SortByFilename, SortByTaggingStatus:
		return true
	default:
		return false
	}
}

// Before compares two documents under a named sort field and direction.
// An unrecognised field fails with ErrInvalidSortKey.
func (d *Document) Before(other *Document, field SortField, ascending bool) (bool, error) {
	switch field {
	case SortByFilename:
		if ascending {
			return d.filename < other.filename, nil
		}
		return d.filename > other.filename, nil
	case SortByTaggingStatus:
		if ascending {
			return d.tagging < other.tagging, nil
		}
		return d.tagging > other.tagging, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidSortKey, string(field))
	}
}

// SortDocuments orders a snapshot in place by the given field and
// direction, validating the field up front. Sorting is stable so
// repeated sorts by different fields compose predictably.
func SortDocuments(documents []*Document, field SortField, ascending bool) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortKey, string(field))
	}
	sort.SliceStable(documents, func(i, j int) bool {
		before, _ := documents[i].Before(documents[j], field, ascending)
		return before
	})
	return nil
}
