package cartstore

import (
	"context"
	"encoding/json"
	"sync"

	domcart "example.com/storefront/internal/domain/cart"
)

// MemoryStorage keeps the serialized record in memory. It goes through the
// same JSON encoding as the redis backend so round-trip behavior is
// identical; used in tests and as a fallback when no redis is configured.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load(ctx context.Context) ([]domcart.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNotFound
	}
	var items []domcart.LineItem
	if err := json.Unmarshal(s.data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MemoryStorage) Save(ctx context.Context, items []domcart.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context) error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}

// Exists reports whether a durable record is present.
func (s *MemoryStorage) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}
