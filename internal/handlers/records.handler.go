package handlers

import (
	"fmt"

	"cautivap/internal/app"
	"cautivap/internal/logger"
	"cautivap/internal/repositories"

	recordsController "cautivap/internal/controllers/records"

	"github.com/gofiber/fiber/v2"
)

type RecordsHandler struct {
	Handler
	controller recordsController.RecordsControllerInterface
}

func NewRecordsHandler(app app.App, router fiber.Router) *RecordsHandler {
	log := logger.New("handlers").File("records_handler")
	return &RecordsHandler{
		controller: app.Controllers.Records,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecordsHandler) Register() {
	requireStorage := h.middleware.RequireStorage()

	h.router.Get("/patients", requireStorage, h.listPatients)
	h.router.Get("/records", requireStorage, h.listRecords)
	h.router.Delete("/records/:id", requireStorage, h.deleteRecord)
}

func (h *RecordsHandler) listPatients(c *fiber.Ctx) error {
	patients, err := h.controller.ListPatients(c.UserContext(), c.Query("bed"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(patients)
}

func (h *RecordsHandler) listRecords(c *fiber.Ctx) error {
	filters := repositories.RecordFilters{
		Date:      c.Query("date"),
		Bed:       c.Query("bed"),
		HN:        c.Query("hn"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	records, err := h.controller.List(c.UserContext(), filters)
	if err != nil {
		return respondError(c, err)
	}

	switch c.Query("format") {
	case "csv":
		filename, data := h.controller.ExportCSV(records)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(data)
	case "xlsx":
		filename, data, err := h.controller.ExportXLSX(records)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
		return c.Send(data)
	default:
		return c.JSON(records)
	}
}

func (h *RecordsHandler) deleteRecord(c *fiber.Ctx) error {
	id, err := h.controller.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}
