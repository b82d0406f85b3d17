package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"warung/internal/models"
	"warung/internal/services"
)

// submitTimeout bounds the external submission call.
const submitTimeout = 10 * time.Second

// CheckoutHandler handles order submission requests.
type CheckoutHandler struct {
	service *services.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// RegisterRoutes registers the checkout routes with the Fiber app.
func (h *CheckoutHandler) RegisterRoutes(router fiber.Router) {
	checkoutRoutes := router.Group("/checkout")
	checkoutRoutes.Post("/", h.HandleSubmit)
	checkoutRoutes.Get("/state", h.HandleGetState)
}

// HandleSubmit validates the cart and hands the order to the submission
// service. The cart survives every failure so the customer can retry.
func (h *CheckoutHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing checkout request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), submitTimeout)
	defer cancel()

	confirmation, err := h.service.Submit(ctx, sessionID(c), req)
	if err != nil {
		log.Printf("Checkout failed for session %s: %v", sessionID(c), err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(confirmation)
}

// HandleGetState reports the checkout state machine's view of the session.
// An optional ?address= query lets the client probe the submission gate.
func (h *CheckoutHandler) HandleGetState(c *fiber.Ctx) error {
	sid := sessionID(c)
	return c.JSON(fiber.Map{
		"state":           h.service.State(sid),
		"ready_to_submit": h.service.ReadyToSubmit(sid, c.Query("address")),
	})
}
