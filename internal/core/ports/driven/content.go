package driven

import (
	"context"
	"iter"
)

// ContentExtractor reads the text content of an archived file for
// OCR-style date and tag recovery. Backed by a PDF text extractor in
// production.
type ContentExtractor interface {
	// ExtractPages returns the page texts of the file at path, in page
	// order. The sequence is lazy and finite, and is not restartable
	// once fully consumed.
	ExtractPages(ctx context.Context, path string) (iter.Seq[string], error)
}

// TagRecogniser finds tag tokens in free text. The recognition
// heuristics live entirely in the adapter; the core only unions the
// result into a document's tag set.
type TagRecogniser interface {
	// RecogniseTags returns the tag names found in text.
	RecogniseTags(text string) []string
}
