package handlers

import (
	"cautivap/internal/app"
	"cautivap/internal/apperrors"
	"cautivap/internal/logger"

	checklistController "cautivap/internal/controllers/checklist"

	"github.com/gofiber/fiber/v2"
)

type ChecklistHandler struct {
	Handler
	controller checklistController.ChecklistControllerInterface
}

func NewChecklistHandler(app app.App, router fiber.Router) *ChecklistHandler {
	log := logger.New("handlers").File("checklist_handler")
	return &ChecklistHandler{
		controller: app.Controllers.Checklist,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ChecklistHandler) Register() {
	// The definition is static and keeps working without a store.
	h.router.Get("/checklist-definition", h.getDefinition)

	h.router.Post("/checklist", h.middleware.RequireStorage(), h.submit)
}

func (h *ChecklistHandler) getDefinition(c *fiber.Ctx) error {
	return c.JSON(h.controller.Definition())
}

func (h *ChecklistHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit").TraceFromContext(c.UserContext())

	var request checklistController.SubmitRequest
	if err := c.BodyParser(&request); err != nil {
		log.Warn("failed to parse submit body", "error", err)
		return respondError(c, apperrors.Validation("Request body must be valid JSON."))
	}

	record, err := h.controller.Submit(c.UserContext(), &request)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}
