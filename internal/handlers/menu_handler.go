package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"warung/internal/repositories"
)

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	catalog repositories.CatalogRepository
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(catalog repositories.CatalogRepository) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/", h.HandleGetMenu)
	menuRoutes.Get("/:id", h.HandleGetMenuItem)
}

// HandleGetMenu lists the full menu in catalog order.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	items, err := h.catalog.GetAll()
	if err != nil {
		log.Printf("Error listing menu: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve menu",
			"error":   err.Error(),
		})
	}
	return c.JSON(items)
}

// HandleGetMenuItem retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetMenuItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Menu item id must be an integer",
		})
	}

	item, err := h.catalog.GetByID(itemID)
	if err != nil {
		log.Printf("Error getting menu item %d: %v", itemID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve menu item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}
