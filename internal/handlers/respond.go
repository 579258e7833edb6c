package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wiralabs/client-console/internal/models"
)

// respondError maps the error taxonomy onto HTTP statuses and always answers
// with a single human-readable message.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Error(),
		})
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundErr.Error(),
		})
	}

	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": conflictErr.Error(),
		})
	}

	var backendErr *models.BackendError
	if errors.As(err, &backendErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": backendErr.Message,
		})
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": "backend request failed",
	})
}
