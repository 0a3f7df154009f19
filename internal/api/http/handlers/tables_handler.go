package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/internal/store"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// TablesHandler exposes the administrative raw-record surface. Any table
// name is accepted; unknown tables surface whatever the store answers.
type TablesHandler struct {
	service *service.TableService
}

// NewTablesHandler constructs handler.
func NewTablesHandler(tableService *service.TableService) *TablesHandler {
	return &TablesHandler{service: tableService}
}

// recordID widens a path id: integer-looking values address serial
// columns, anything else passes through as an opaque string.
func recordID(c *fiber.Ctx) any {
	raw := c.Params("id")
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

// List GET /api/:table. Query parameters become exact-match filters.
func (h *TablesHandler) List(c *fiber.Ctx) error {
	filters := store.Filters{}
	for k, v := range c.Queries() {
		filters[k] = v
	}
	rows, err := h.service.Query(c.UserContext(), c.Params("table"), filters)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []store.Row{}
	}
	return c.JSON(fiber.Map{"success": true, "data": rows, "count": len(rows)})
}

// Get GET /api/:table/:id.
func (h *TablesHandler) Get(c *fiber.Ctx) error {
	row, err := h.service.Get(c.UserContext(), c.Params("table"), recordID(c))
	if err != nil {
		return err
	}
	if row == nil {
		return util.NewNotFound("Record", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": row})
}

// Create POST /api/:table.
func (h *TablesHandler) Create(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var row store.Row
	if err := c.BodyParser(&row); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if len(row) == 0 {
		return util.NewValidationError("No data provided", nil)
	}

	inserted, err := h.service.Insert(c.UserContext(), c.Params("table"), row)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    []store.Row{inserted},
		"message": "Record created successfully",
	})
}

// Update PUT /api/:table/:id.
func (h *TablesHandler) Update(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var patch store.Row
	if err := c.BodyParser(&patch); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if len(patch) == 0 {
		return util.NewValidationError("No data provided", nil)
	}

	updated, err := h.service.Update(c.UserContext(), c.Params("table"), recordID(c), patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Record", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    []store.Row{updated},
		"message": "Record updated successfully",
	})
}

// Delete DELETE /api/:table/:id.
func (h *TablesHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.service.Delete(c.UserContext(), c.Params("table"), recordID(c))
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Record", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Record deleted successfully",
	})
}
