package memory

import (
	"sync"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// Ensure FileManager implements the interface.
var _ driven.FileManager = (*FileManager)(nil)

// FileManager is an in-memory implementation of driven.FileManager.
// It tracks a flat set of occupied paths and created directories.
// MoveErr and CreateErr, when set, are returned by the corresponding
// call to exercise failure handling.
type FileManager struct {
	mu          sync.Mutex
	files       map[string]struct{}
	directories map[string]struct{}

	MoveErr   error
	CreateErr error
}

// NewFileManager creates an in-memory file manager seeded with the
// given occupied paths.
func NewFileManager(paths ...string) *FileManager {
	m := &FileManager{
		files:       make(map[string]struct{}),
		directories: make(map[string]struct{}),
	}
	for _, path := range paths {
		m.files[path] = struct{}{}
	}
	return m
}

// Move relocates a path within the in-memory set.
func (m *FileManager) Move(from, to string) error {
	if m.MoveErr != nil {
		return m.MoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, from)
	m.files[to] = struct{}{}
	return nil
}

// CreateDirectories records the directory as created.
func (m *FileManager) CreateDirectories(path string) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.directories[path] = struct{}{}
	return nil
}

// Exists reports whether path is occupied.
func (m *FileManager) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok
}

// CreatedDirectory reports whether CreateDirectories saw path.
func (m *FileManager) CreatedDirectory(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.directories[path]
	return ok
}
