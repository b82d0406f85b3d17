package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"warung/internal/models"
	"warung/internal/services"
)

// CartHandler handles HTTP requests for the session cart.
// Every mutation responds with the full cart view, pricing included, so the
// client never derives totals itself.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:id", h.HandleSetQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the current cart with derived pricing.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	return c.JSON(h.service.View(sessionID(c)))
}

// HandleAddItem adds one unit of an item to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req models.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add item request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "item_id is required and must be positive",
			"error":   err.Error(),
		})
	}

	view, err := h.service.AddItem(sessionID(c), req.ItemID)
	if err != nil {
		log.Printf("Error adding item %d to cart: %v", req.ItemID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(view)
}

// HandleSetQuantity replaces a line's quantity. Quantity 0 removes the line;
// negative quantities are rejected here rather than treated as removal.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item id must be an integer",
		})
	}

	var req models.SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing set quantity request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Quantity must not be negative",
			"error":   models.ErrInvalidQuantity.Error(),
		})
	}

	view, err := h.service.SetQuantity(sessionID(c), itemID, req.Quantity)
	if err != nil {
		log.Printf("Error setting quantity for item %d: %v", itemID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not set quantity",
			"error":   err.Error(),
		})
	}
	return c.JSON(view)
}

// HandleRemoveItem removes one unit of an item from the cart. Removing an
// item that is not in the cart is a no-op, not an error.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item id must be an integer",
		})
	}

	view, err := h.service.RemoveItem(sessionID(c), itemID)
	if err != nil {
		log.Printf("Error removing item %d from cart: %v", itemID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(view)
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Clear(sessionID(c)))
}
