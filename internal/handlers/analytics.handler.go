package handlers

import (
	"cautivap/internal/app"
	"cautivap/internal/logger"

	analyticsController "cautivap/internal/controllers/analytics"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsHandler struct {
	Handler
	controller analyticsController.AnalyticsControllerInterface
}

func NewAnalyticsHandler(app app.App, router fiber.Router) *AnalyticsHandler {
	log := logger.New("handlers").File("analytics_handler")
	return &AnalyticsHandler{
		controller: app.Controllers.Analytics,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AnalyticsHandler) Register() {
	h.router.Get("/analytics", h.middleware.RequireStorage(), h.aggregate)
}

func (h *AnalyticsHandler) aggregate(c *fiber.Ctx) error {
	summary, err := h.controller.Aggregate(c.UserContext(), analyticsController.Request{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Section:   c.Query("section"),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(summary)
}
