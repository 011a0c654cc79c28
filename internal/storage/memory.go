package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory RecordStore used by tests and as a swappable
// persistence port when no durable storage is wanted.
type MemoryStore struct {
	records map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]byte),
	}
}

// Load returns the value stored under key, if any.
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Save writes value under key, replacing any prior value.
func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = stored
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
