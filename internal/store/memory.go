package store

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an in-process StateStore. It shares the JSON
// codec with the Redis store, so tests exercise the same byte-level
// round trip including corrupt-value recovery.
func NewMemoryStore() StateStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, respondentID, field string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key(respondentID, field)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *memoryStore) Set(_ context.Context, respondentID, field string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[key(respondentID, field)] = cp
	return nil
}

func (s *memoryStore) Delete(_ context.Context, respondentID string, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range fields {
		delete(s.data, key(respondentID, f))
	}
	return nil
}
