package repositories

import (
	"fmt"
	"sync"

	"warung/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository.
// Items are kept in seed order so GetAll returns a stable menu listing.
type MockCatalogRepository struct {
	items []models.MenuItem
	byID  map[int]int // item id -> index into items
	mu    sync.RWMutex
}

// NewMockCatalogRepository creates a new instance of MockCatalogRepository.
func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		byID: make(map[int]int),
	}
}

// Seed loads the catalog. Intended to be called once at startup; a duplicate
// item id replaces the earlier entry.
func (r *MockCatalogRepository) Seed(items []models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if idx, ok := r.byID[item.ID]; ok {
			r.items[idx] = item
			continue
		}
		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, item)
	}
}

// GetAll returns all menu items in seed order.
func (r *MockCatalogRepository) GetAll() ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.MenuItem, len(r.items))
	copy(itemList, r.items)
	return itemList, nil
}

// GetByID returns a menu item by its ID.
func (r *MockCatalogRepository) GetByID(id int) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("menu item %d: %w", id, models.ErrItemNotFound)
	}
	item := r.items[idx]
	return &item, nil
}
