package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtractor_MissingFile tests the open error path
func TestExtractor_MissingFile(t *testing.T) {
	extractor := NewExtractor()

	pages, err := extractor.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))

	assert.Error(t, err)
	assert.Nil(t, pages)
}

// TestExtractor_NotAPDF tests that junk bytes fail at open, not later
func TestExtractor_NotAPDF(t *testing.T) {
	extractor := NewExtractor()
	path := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	_, err := extractor.ExtractPages(context.Background(), path)

	assert.Error(t, err)
}
