package handlers

import (
	"errors"

	"cautivap/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy onto HTTP statuses. Messages
// travel through verbatim; storage failures surface the store's own
// message.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Message,
		})
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundErr.Message,
		})
	}

	var storageErr *apperrors.StorageError
	if errors.As(err, &storageErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": storageErr.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
