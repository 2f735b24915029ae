package memory

import (
	"context"
	"iter"
	"slices"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// Ensure ContentExtractor implements the interface.
var _ driven.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is an in-memory implementation of
// driven.ContentExtractor serving fixed page texts keyed by path.
// Err, when set, is returned instead of a sequence.
type ContentExtractor struct {
	pages map[string][]string

	Err error
}

// NewContentExtractor creates an extractor serving the given page texts.
func NewContentExtractor(pages map[string][]string) *ContentExtractor {
	if pages == nil {
		pages = make(map[string][]string)
	}
	return &ContentExtractor{pages: pages}
}

// ExtractPages returns the configured pages for path, in order.
// Unknown paths yield an empty sequence, matching a PDF with no text.
func (e *ContentExtractor) ExtractPages(_ context.Context, path string) (iter.Seq[string], error) {
	if e.Err != nil {
		return nil, e.Err
	}
	return slices.Values(e.pages[path]), nil
}
