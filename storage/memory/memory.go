package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/adminforge/adminsdk/core/session"
)

// Storage is an in-memory session.Storage implementation for tests and
// ephemeral processes. Values are copied on the way in and out so callers
// never share backing arrays with the store.
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory storage.
func New() *Storage {
	return &Storage{
		data: make(map[string][]byte),
	}
}

// Get returns the value stored under key, or session.ErrKeyNotFound.
func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, session.ErrKeyNotFound
	}
	return bytes.Clone(value), nil
}

// Set stores value under key, replacing any previous value.
func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = bytes.Clone(value)
	return nil
}

// Delete removes the given keys; missing keys are a no-op.
func (s *Storage) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

// Len returns the number of stored keys, for test assertions.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
