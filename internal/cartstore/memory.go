package cartstore

import (
	"context"
	"encoding/json"
	"sync"

	"nautiq-backend/internal/domain"
)

// MemoryStore keeps cart payloads in process memory. It backs local
// development and tests without Redis, and shares the decode path with the
// Redis store so fail-open behavior is identical.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	raw := s.data[sessionID]
	s.mu.Unlock()
	return decodeItems(raw, nil), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.data, sessionID)
	s.mu.Unlock()
	return nil
}
