package app

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"storefront/internal/cart/domain"
)

// Store owns the cart line items. Mutations go through a copy of the item
// list which is persisted before being committed, so a failed Save leaves
// both the in-memory state and the stored value untouched.
type Store struct {
	mu      sync.Mutex
	storage Storage
	items   []domain.Item
}

// NewStore builds a store seeded from storage. Missing, corrupt or
// wrongly shaped persisted data is discarded and the cart starts empty;
// loading never fails.
func NewStore(ctx context.Context, storage Storage) *Store {
	s := &Store{storage: storage}

	data, found, err := storage.Load(ctx)
	if err != nil || !found {
		return s
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return s
	}
	s.items = domain.Sanitize(items)

	return s
}

// Add puts one unit of productID in the cart. An existing line is bumped
// by one, clamped at the quantity cap; an unknown ID starts a new line at
// quantity 1. Product IDs are opaque here, catalog validation is the
// gateway's concern.
func (s *Store) Add(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.items)
	found := false
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = domain.ClampQuantity(next[i].Quantity + 1)
			found = true
			break
		}
	}
	if !found {
		next = append(next, domain.Item{ProductID: productID, Quantity: 1})
	}

	return s.commit(ctx, next)
}

// Remove deletes the matching line. Absent IDs are a no-op, not an error.
func (s *Store) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, removeItem(s.items, productID))
}

// SetQuantity sets the line quantity, clamped to the valid range. A value
// below 1 removes the line. Unknown product IDs are ignored: updating
// implies the line already exists.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.commit(ctx, removeItem(s.items, productID))
	}

	next := slices.Clone(s.items)
	for i := range next {
		if next[i].ProductID == productID {
			next[i].Quantity = domain.ClampQuantity(quantity)
			break
		}
	}

	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []domain.Item{})
}

// Contains reports whether productID has a line in the cart.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(s.items, func(it domain.Item) bool {
		return it.ProductID == productID
	})
}

// TotalItems returns the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.TotalItems(s.items)
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

// commit persists next and, only on success, makes it the live item list.
// Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []domain.Item) error {
	if next == nil {
		next = []domain.Item{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.storage.Save(ctx, data); err != nil {
		return fmt.Errorf("storage.Save: %w", err)
	}
	s.items = next
	return nil
}

func removeItem(items []domain.Item, productID string) []domain.Item {
	next := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			next = append(next, it)
		}
	}
	return next
}
