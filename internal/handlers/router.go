package handlers

import (
	"cautivap/internal/app"
	"cautivap/internal/handlers/middleware"
	"cautivap/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewChecklistHandler(*app, api).Register()
	NewRecordsHandler(*app, api).Register()
	NewAnalyticsHandler(*app, api).Register()

	setupStaticRoutes(router, app)

	return nil
}

func setupStaticRoutes(router fiber.Router, app *app.App) {
	router.Static("/cauti-vap", app.Config.PublicDir)
	router.Static("/", app.Config.PublicDir)

	// Catch-all for unmatched routes
	router.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	})
}
