// Package tagging implements the TagRecogniser port by matching a set
// of known candidate tags against extracted text. The original filing
// workflow suggests tags that already exist in the archive, so the
// candidate provider is typically a closure over the store's current
// tag counts.
package tagging

import (
	"strings"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// Ensure Recogniser implements the interface.
var _ driven.TagRecogniser = (*Recogniser)(nil)

// Recogniser finds known tags inside free text.
type Recogniser struct {
	candidates func() []string
}

// NewRecogniser creates a recogniser. candidates is called on every
// recognition, so the set can follow the archive as it grows.
func NewRecogniser(candidates func() []string) *Recogniser {
	return &Recogniser{candidates: candidates}
}

// RecogniseTags returns every candidate tag that occurs in text,
// compared case-insensitively. Matching is plain substring containment;
// one-letter candidates are ignored because they match almost anything.
func (r *Recogniser) RecogniseTags(text string) []string {
	if r.candidates == nil {
		return nil
	}
	lowered := strings.ToLower(text)

	var found []string
	for _, candidate := range r.candidates() {
		name := strings.ToLower(strings.TrimSpace(candidate))
		if len(name) < 2 {
			continue
		}
		if strings.Contains(lowered, name) {
			found = append(found, name)
		}
	}
	return found
}
