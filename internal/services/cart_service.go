package services

import (
	"sync"

	"teststore/internal/catalog"
	"teststore/internal/domain"
)

// CartService keeps one in-memory cart per browsing session. Carts are
// transient: they live and die with the process and are never persisted.
// Items stay in insertion order; quantity never drops below 1 except by
// removal.
type CartService struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewCartService() *CartService {
	return &CartService{carts: map[string][]domain.CartItem{}}
}

// Add puts one unit of the product into the session's cart: an existing
// line gains quantity 1, otherwise a new line is appended. It returns the
// product so the caller can announce it.
func (s *CartService) Add(sid string, productID int) (domain.Product, bool) {
	p, ok := catalog.Get(productID)
	if !ok {
		return domain.Product{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sid]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			return p, true
		}
	}
	s.carts[sid] = append(items, domain.CartItem{Product: p, Quantity: 1})
	return p, true
}

// Remove deletes the line with that product id; removing an absent id is
// a silent no-op.
func (s *CartService) Remove(sid string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sid]
	for i := range items {
		if items[i].ID == productID {
			s.carts[sid] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Adjust changes a line's quantity by delta, clamped to a minimum of 1.
// Underflow never removes the line and never errors.
func (s *CartService) Adjust(sid string, productID, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sid]
	for i := range items {
		if items[i].ID == productID {
			q := items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			items[i].Quantity = q
			return
		}
	}
}

// Items returns a copy of the session's cart lines in insertion order.
func (s *CartService) Items(sid string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.carts[sid]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

// Count is the total unit count, as shown on the header badge.
func (s *CartService) Count(sid string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, it := range s.carts[sid] {
		n += it.Quantity
	}
	return n
}

// Total is the derived sum of price times quantity over all lines.
func (s *CartService) Total(sid string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, it := range s.carts[sid] {
		total += it.Subtotal()
	}
	return total
}

// Clear empties the session's cart. Called once, on successful checkout.
func (s *CartService) Clear(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
