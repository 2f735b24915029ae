// Package pdf implements the ContentExtractor port with a pure-Go PDF
// text extractor. No OCR happens here: only text already embedded in
// the PDF (for scans, the OCR layer the scanner software wrote) is
// returned.
package pdf

import (
	"context"
	"fmt"
	"iter"

	pdfreader "github.com/ledongthuc/pdf"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
	"github.com/custodia-labs/archive-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.ContentExtractor = (*Extractor)(nil)

// Extractor reads per-page plain text out of PDF files.
type Extractor struct{}

// NewExtractor creates a PDF content extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages returns the page texts of the PDF at path, lazily: a
// page is only decoded when the consumer reaches it. The underlying
// file is closed when the sequence ends, so the sequence cannot be
// iterated a second time. Pages whose text cannot be decoded are
// skipped with a warning rather than failing the whole document.
func (*Extractor) ExtractPages(ctx context.Context, path string) (iter.Seq[string], error) {
	file, reader, err := pdfreader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return func(yield func(string) bool) {
		defer file.Close()
		for number := 1; number <= reader.NumPage(); number++ {
			if ctx.Err() != nil {
				return
			}
			page := reader.Page(number)
			if page.V.IsNull() {
				continue
			}
			text, err := page.GetPlainText(nil)
			if err != nil {
				logger.Warn("Skipping page %d of %s: %v", number, path, err)
				continue
			}
			if !yield(text) {
				return
			}
		}
	}, nil
}
