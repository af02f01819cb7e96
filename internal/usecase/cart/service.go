package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	domcart "example.com/storefront/internal/domain/cart"
	"example.com/storefront/internal/infra/cartstore"
)

// Store holds the cart's line items in memory and writes them through to its
// durable storage after every mutation. It is an injected instance, not a
// package-level singleton, so tests can run isolated carts.
type Store struct {
	mu      sync.Mutex
	storage cartstore.Storage
	items   []domcart.LineItem
}

// NewStore loads the persisted cart record. A missing or unparsable record
// yields an empty cart; load failures are logged, never fatal.
func NewStore(ctx context.Context, storage cartstore.Storage) *Store {
	s := &Store{storage: storage}

	items, err := storage.Load(ctx)
	switch {
	case err == nil:
		s.items = items
	case errors.Is(err, cartstore.ErrNotFound):
	default:
		log.Printf("error loading cart items from storage: %v", err)
	}
	return s
}

// AddItem inserts or bumps the line item with the input's id. On first
// insert the quantity is pinned to 1 and the input's own quantity is
// ignored; a repeated add increments the existing quantity by 1. This
// matches the original storefront's add path and is kept on purpose.
func (s *Store) AddItem(ctx context.Context, input domcart.LineItem) error {
	if input.ID == 0 || input.Price < 0 {
		return domcart.ErrInvalidItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].ID == input.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		input.Quantity = 1
		s.items = append(s.items, input)
	}

	return s.persist(ctx)
}

// RemoveItem deletes the line item with the given id. Removing an absent id
// is a silent no-op.
func (s *Store) RemoveItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept

	return s.persist(ctx)
}

// UpdateItemQuantity sets the quantity verbatim. Zero is allowed (the
// decrement path may park an item at 0); negative values are rejected.
// An unknown id is a no-op.
func (s *Store) UpdateItemQuantity(ctx context.Context, id int64, quantity int64) error {
	if quantity < 0 {
		return domcart.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}

	return s.persist(ctx)
}

// ClearCart empties the cart and deletes the durable record entirely rather
// than persisting an empty list.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.storage.Delete(ctx); err != nil {
		return fmt.Errorf("deleting cart record: %w", err)
	}
	return nil
}

// Replace swaps in a full item sequence and persists it. The checkout
// coordinator uses it to put a snapshot back after a failed order write.
func (s *Store) Replace(ctx context.Context, items []domcart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]domcart.LineItem, len(items))
	copy(s.items, items)

	return s.persist(ctx)
}

func (s *Store) CalculateTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *Store) CalculateTotalItemCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the current line item sequence in insertion order.
func (s *Store) Items() []domcart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domcart.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.items); err != nil {
		return fmt.Errorf("persisting cart items: %w", err)
	}
	return nil
}
