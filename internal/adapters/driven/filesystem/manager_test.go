package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_Move tests moving a file within a temp directory
func TestManager_Move(t *testing.T) {
	manager := NewManager()
	dir := t.TempDir()
	source := filepath.Join(dir, "scan1.pdf")
	target := filepath.Join(dir, "archived.pdf")
	require.NoError(t, os.WriteFile(source, []byte("content"), 0o644))

	require.NoError(t, manager.Move(source, target))

	assert.False(t, manager.Exists(source))
	assert.True(t, manager.Exists(target))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

// TestManager_Move_MissingSource tests the error path
func TestManager_Move_MissingSource(t *testing.T) {
	manager := NewManager()
	dir := t.TempDir()

	err := manager.Move(filepath.Join(dir, "absent.pdf"), filepath.Join(dir, "target.pdf"))

	assert.Error(t, err)
}

// TestManager_CreateDirectories tests recursive directory creation
func TestManager_CreateDirectories(t *testing.T) {
	manager := NewManager()
	dir := t.TempDir()
	nested := filepath.Join(dir, "archive", "2010")

	require.NoError(t, manager.CreateDirectories(nested))
	assert.True(t, manager.Exists(nested))

	// Creating an existing directory is a no-op.
	assert.NoError(t, manager.CreateDirectories(nested))
}

// TestManager_Exists tests existence checks
func TestManager_Exists(t *testing.T) {
	manager := NewManager()
	dir := t.TempDir()

	assert.True(t, manager.Exists(dir))
	assert.False(t, manager.Exists(filepath.Join(dir, "absent.pdf")))
}
