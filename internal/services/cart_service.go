package services

import (
	"fmt"
	"sync"

	"warung/internal/models"
	"warung/internal/repositories"
)

// sessionCart is the working set of one customer session. Lines are kept in
// first-add order; removing a line and re-adding the item puts it at the end.
type sessionCart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// CartService owns the per-session carts and applies all cart mutations.
// Each mutation is serialized per cart and returns a fresh CartView with the
// full set of derived pricing values, so callers always observe consistent
// totals and never compute money math themselves.
type CartService struct {
	catalog repositories.CatalogRepository
	pricing *PricingService

	mu    sync.Mutex
	carts map[string]*sessionCart
}

// NewCartService creates a new CartService.
func NewCartService(catalog repositories.CatalogRepository, pricing *PricingService) *CartService {
	return &CartService{
		catalog: catalog,
		pricing: pricing,
		carts:   make(map[string]*sessionCart),
	}
}

// cart returns the session's cart, creating an empty one on first use.
func (s *CartService) cart(sessionID string) *sessionCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &sessionCart{}
		s.carts[sessionID] = c
	}
	return c
}

// view must be called with the cart's mutex held.
func (s *CartService) view(c *sessionCart) models.CartView {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)

	total := 0
	for _, line := range lines {
		total += line.Quantity
	}

	return models.CartView{
		Lines:         lines,
		TotalQuantity: total,
		Pricing:       s.pricing.Price(lines),
	}
}

// AddItem adds one unit of the item: an existing line is incremented, an
// unknown item is a new line with quantity 1. The item must exist in the
// catalog; an invalid id leaves the cart unchanged.
func (s *CartService) AddItem(sessionID string, itemID int) (models.CartView, error) {
	item, err := s.catalog.GetByID(itemID)
	if err != nil {
		return models.CartView{}, fmt.Errorf("add item: %w", err)
	}

	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return s.view(c), nil
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ItemID:      item.ID,
		Name:        item.Name,
		UnitPrice:   item.Price,
		PrepMinutes: item.PrepMinutes,
		Quantity:    1,
	})
	return s.view(c), nil
}

// RemoveItem removes one unit of the item, dropping the line when its
// quantity reaches zero. Removing an item that is not in the cart is a no-op.
func (s *CartService) RemoveItem(sessionID string, itemID int) (models.CartView, error) {
	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID != itemID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		break
	}
	return s.view(c), nil
}

// SetQuantity replaces a line's quantity outright. A quantity of zero or
// less removes the line; a positive quantity for an item not yet in the cart
// inserts a new line at exactly that quantity.
func (s *CartService) SetQuantity(sessionID string, itemID, quantity int) (models.CartView, error) {
	if quantity <= 0 {
		return s.RemoveLine(sessionID, itemID)
	}

	item, err := s.catalog.GetByID(itemID)
	if err != nil {
		return models.CartView{}, fmt.Errorf("set quantity: %w", err)
	}

	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity = quantity
			return s.view(c), nil
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ItemID:      item.ID,
		Name:        item.Name,
		UnitPrice:   item.Price,
		PrepMinutes: item.PrepMinutes,
		Quantity:    quantity,
	})
	return s.view(c), nil
}

// RemoveLine drops the whole line for an item regardless of quantity.
// A no-op when the item is not in the cart.
func (s *CartService) RemoveLine(sessionID string, itemID int) (models.CartView, error) {
	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	return s.view(c), nil
}

// Clear removes every line. Always succeeds and is idempotent.
func (s *CartService) Clear(sessionID string) models.CartView {
	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	return s.view(c)
}

// View returns the current cart with freshly computed pricing.
func (s *CartService) View(sessionID string) models.CartView {
	c := s.cart(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()

	return s.view(c)
}

// Lines returns a snapshot of the cart lines in first-add order. Each call
// produces an independent copy, so iteration can restart freely.
func (s *CartService) Lines(sessionID string) []models.CartLine {
	return s.View(sessionID).Lines
}

// TotalQuantity is the sum of all line quantities, zero for an empty cart.
func (s *CartService) TotalQuantity(sessionID string) int {
	return s.View(sessionID).TotalQuantity
}
