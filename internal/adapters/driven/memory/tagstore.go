package memory

import (
	"slices"
	"sync"

	"github.com/custodia-labs/archive-cli/internal/core/ports/driven"
)

// Ensure TagStore implements the interface.
var _ driven.TagStore = (*TagStore)(nil)

// TagStore is an in-memory implementation of driven.TagStore.
// GetErr and SetErr, when set, are returned by the corresponding call.
type TagStore struct {
	mu   sync.RWMutex
	tags map[string][]string

	GetErr error
	SetErr error
}

// NewTagStore creates an empty in-memory tag store.
func NewTagStore() *TagStore {
	return &TagStore{tags: make(map[string][]string)}
}

// GetTags returns the tags recorded for path.
func (s *TagStore) GetTags(path string) ([]string, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tags[path]), nil
}

// SetTags replaces the tags recorded for path.
func (s *TagStore) SetTags(path string, tags []string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags[path] = slices.Clone(tags)
	return nil
}
