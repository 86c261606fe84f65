package store

import (
	"context"
	"sync"
)

// MemStore is an in-memory store for development and testing.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]*Document)}
}

// Insert stores a document under its ID.
func (s *MemStore) Insert(ctx context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *doc
	s.docs[doc.ID] = &cp
	return nil
}

// Get retrieves a document by ID.
func (s *MemStore) Get(ctx context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *doc
	return &cp, nil
}

// Delete removes a document.
func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemStore) Close(ctx context.Context) error {
	return nil
}

// Len reports the number of stored documents.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)
