package repositories

import (
	"warung/internal/models"
)

// CatalogRepository defines read access to the menu catalog.
// The catalog is immutable after seeding, so there is no write surface here.
type CatalogRepository interface {
	GetAll() ([]models.MenuItem, error)
	GetByID(id int) (*models.MenuItem, error)
}
