package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warung/internal/models"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// GetAll retrieves the full menu ordered by item id.
func (r *GORMCatalogRepository) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list menu items: %v", models.ErrCatalogUnavailable, err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *GORMCatalogRepository) GetByID(id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", id, models.ErrItemNotFound)
		}
		return nil, fmt.Errorf("%w: failed to get menu item %d: %v", models.ErrCatalogUnavailable, id, err)
	}
	return &item, nil
}

// SeedCatalog inserts the menu items if the catalog table is empty.
// The catalog is immutable afterwards, so an already-populated table is
// left untouched.
func SeedCatalog(db *gorm.DB, items []models.MenuItem) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
