package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// StorageNotConfiguredMessage is the fixed body data endpoints answer
// with when the relational store settings are absent.
const StorageNotConfiguredMessage = "Storage is not configured. Set DB_HOST, DB_NAME and DB_USER."

// RequireStorage gates data endpoints on a configured store. The
// definition and static endpoints stay reachable without one.
func (m *Middleware) RequireStorage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !m.DB.Configured() {
			m.log.Warn("request rejected, storage is not configured",
				"path", c.Path(),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": StorageNotConfiguredMessage,
			})
		}
		return c.Next()
	}
}
