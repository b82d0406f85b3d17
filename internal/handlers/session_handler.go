package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"warung/internal/services"
)

// SessionHandler opens customer sessions. There are no credentials to check;
// any name starts a session, matching the app's always-succeeding login.
type SessionHandler struct {
	service *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service *services.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// RegisterRoutes registers the session routes with the Fiber app.
func (h *SessionHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/session", h.HandleOpenSession)
}

// HandleOpenSession issues a session token for the given customer name.
func (h *SessionHandler) HandleOpenSession(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing session request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "guest"
	}

	token, err := h.service.Open(name)
	if err != nil {
		log.Printf("Error opening session for %q: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not open session",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"name":  name,
	})
}
