// Package filesystem implements the FileManager port over the local
// operating system.
package filesystem

import (
	"fmt"
	"os"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// Ensure Manager implements the interface.
var _ driven.FileManager = (*Manager)(nil)

// Manager performs file moves and directory creation with os calls.
type Manager struct{}

// NewManager creates a filesystem manager.
func NewManager() *Manager {
	return &Manager{}
}

// Move relocates a file. Rename only works within one filesystem; the
// archive root is expected to live on the same volume as the inbox.
func (*Manager) Move(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("moving %s to %s: %w", from, to, err)
	}
	return nil
}

// CreateDirectories creates path and any missing parents.
func (*Manager) CreateDirectories(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// Exists reports whether something occupies path.
func (*Manager) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
