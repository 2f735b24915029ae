package xattr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempFile creates an empty file and skips the test when the
// filesystem rejects extended attributes (tmpfs on some systems).
func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan1.pdf")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	if !Supported(path) {
		t.Skip("extended attributes not supported here")
	}
	return path
}

// TestTagStore_RoundTrip tests writing and reading tags back
func TestTagStore_RoundTrip(t *testing.T) {
	store := NewTagStore()
	path := tempFile(t)

	require.NoError(t, store.SetTags(path, []string{"bill", "phone"}))

	tags, err := store.GetTags(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"bill", "phone"}, tags)
}

// TestTagStore_Untagged tests reading a file without the attribute
func TestTagStore_Untagged(t *testing.T) {
	store := NewTagStore()
	path := tempFile(t)

	tags, err := store.GetTags(path)

	require.NoError(t, err)
	assert.Empty(t, tags)
}

// TestTagStore_Overwrite tests that SetTags replaces, not appends
func TestTagStore_Overwrite(t *testing.T) {
	store := NewTagStore()
	path := tempFile(t)

	require.NoError(t, store.SetTags(path, []string{"bill", "phone"}))
	require.NoError(t, store.SetTags(path, []string{"tax"}))

	tags, err := store.GetTags(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tax"}, tags)
}

// TestTagStore_MissingFile tests the error path
func TestTagStore_MissingFile(t *testing.T) {
	store := NewTagStore()

	err := store.SetTags(filepath.Join(t.TempDir(), "absent.pdf"), []string{"bill"})

	assert.Error(t, err)
}
