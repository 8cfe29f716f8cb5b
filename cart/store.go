// Package cart is the single source of truth for the shopping cart: an
// ordered sequence of line items kept in memory and written through to the
// key-value store after every mutation, so a reload observes the last
// mutation's effect.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"sitara.io/store/driver"
	"sitara.io/store/models"
)

const storageKey = "cart"

// Store holds the cart for one browsing session. Adding the same product
// twice creates two independent lines; color and dimensions differ per line,
// so lines are never merged.
type Store struct {
	kv     driver.KV
	logger *zap.Logger

	mu    sync.Mutex
	lines []models.CartLine
}

// NewStore builds the store and rehydrates it from the key-value store.
// Missing or malformed stored state yields an empty cart, never an error.
func NewStore(ctx context.Context, kv driver.KV, logger *zap.Logger) *Store {
	s := &Store{kv: kv, logger: logger}

	raw, err := kv.Get(ctx, storageKey)
	if err != nil {
		if err != driver.ErrKeyNotFound {
			logger.Warn("cart load failed, starting empty", zap.Error(err))
		}
		return s
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		logger.Warn("stored cart malformed, starting empty", zap.Error(err))
		return s
	}
	s.lines = lines
	return s
}

// Add appends the line to the end of the sequence unconditionally.
func (s *Store) Add(ctx context.Context, line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	return s.persist(ctx)
}

// Remove drops the line at index. An out-of-bounds index is a no-op.
func (s *Store) Remove(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return nil
	}
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return s.persist(ctx)
}

// UpdateQuantity replaces the quantity of the line at index. A quantity
// below 1 is rejected as a no-op; it never removes the line or floors to
// zero. All other fields are preserved.
func (s *Store) UpdateQuantity(ctx context.Context, index, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 || index < 0 || index >= len(s.lines) {
		return nil
	}
	s.lines[index].Quantity = quantity
	return s.persist(ctx)
}

// UpdateColor replaces the color selection of the line at index, leaving
// quantity and dimensions untouched.
func (s *Store) UpdateColor(ctx context.Context, index int, color models.ProductColor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return nil
	}
	s.lines[index].Color = color
	return s.persist(ctx)
}

// Clear empties the sequence and persists the empty state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist(ctx)
}

// Lines returns a copy of the current sequence in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalItems is the sum of quantities across all lines, recomputed on every
// call.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines.
// Unparsable prices contribute 0; the total is always a finite number.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += ParsePrice(line.Price) * float64(line.Quantity)
	}
	return total
}

// persist writes the full sequence through to the key-value store. The
// in-memory mutation stands even if the write fails; callers surface the
// error without rolling back. Caller holds s.mu.
func (s *Store) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Error("cart encode failed", zap.Error(err))
		return err
	}
	if err := s.kv.Set(ctx, storageKey, string(raw), 0); err != nil {
		s.logger.Error("cart persist failed", zap.Error(err))
		return err
	}
	return nil
}
