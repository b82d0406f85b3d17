package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"warung/internal/models"
)

// sessionID extracts the session id stored by the session middleware.
func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals("session_id").(string); ok {
		return id
	}
	return ""
}

// statusForError maps domain errors onto HTTP status codes.
func statusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrMissingAddress),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrSubmissionInProgress):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrSubmissionTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, models.ErrSubmissionFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, models.ErrCatalogUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
