// Package memory provides an in-process storage.Store backed by a map.
// It is the default driver for local development and tests; all data is
// lost on restart.
package memory

import (
	"context"
	"sync"

	"giftie/internal/domain/storage"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory store.
func New() storage.Store {
	return &memoryStore{
		data: make(map[string][]byte),
	}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	// Copy so callers can't mutate the stored slice.
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *memoryStore) Put(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = stored

	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}
