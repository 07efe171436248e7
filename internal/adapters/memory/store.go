// Package memory provides a volatile key-value store for tests and demos.
package memory

import (
	"context"
	"sync"
)

// Store is an in-memory implementation of ports.KeyValueStore
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}
