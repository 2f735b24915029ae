package services

import (
	"sync"

	"github.com/custodia-labs/archive-cli/internal/core/domain"
)

// ArchiveStore is the shared in-memory set of documents, keyed by
// entity ID. Mutations run as single atomic critical sections: a batch
// Add or Remove is either fully visible to a concurrent reader's
// snapshot or not at all, and replace-by-identity can never leave two
// documents with the same ID. Reads copy out under the lock so search
// and sort always work on an immutable local snapshot, never on live
// state. No operation blocks indefinitely or fails.
type ArchiveStore struct {
	mu        sync.RWMutex
	documents map[string]*domain.Document
}

// NewArchiveStore creates an empty store.
func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{
		documents: make(map[string]*domain.Document),
	}
}

// Add inserts one or more documents as a single atomic batch.
// Documents whose ID is already present are replaced.
func (s *ArchiveStore) Add(documents ...*domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, document := range documents {
		if document == nil {
			continue
		}
		s.documents[document.ID()] = document
	}
}

// Remove deletes one or more documents, by identity, as a single
// atomic batch. Unknown documents are ignored.
func (s *ArchiveStore) Remove(documents ...*domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, document := range documents {
		if document == nil {
			continue
		}
		delete(s.documents, document.ID())
	}
}

// RemoveAll empties the store.
func (s *ArchiveStore) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]*domain.Document)
}

// Update replaces the stored document with the same ID, or inserts the
// document if no such entity exists yet.
func (s *ArchiveStore) Update(document *domain.Document) {
	if document == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[document.ID()] = document
}

// Documents returns a snapshot of the current contents. The slice is
// owned by the caller; the documents themselves are shared entities.
func (s *ArchiveStore) Documents() []*domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]*domain.Document, 0, len(s.documents))
	for _, document := range s.documents {
		snapshot = append(snapshot, document)
	}
	return snapshot
}

// GetByPath returns the document currently located at path, or nil.
func (s *ArchiveStore) GetByPath(path string) *domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, document := range s.documents {
		if document.Path() == path {
			return document
		}
	}
	return nil
}

// Len returns the number of stored documents.
func (s *ArchiveStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
