package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/api/dto"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// ClientsHandler manages client endpoints.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// List GET /api/clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, clientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Search GET /api/clients/search.
func (h *ClientsHandler) Search(c *fiber.Ctx) error {
	query := repository.ClientQuery{Description: queryPtr(c, "description")}
	clients, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	items := make([]dto.ClientSummary, 0, len(clients))
	for i := range clients {
		items = append(items, clientSummary(&clients[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Get GET /api/clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid client id", nil)
	}
	client, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if client == nil {
		return util.NewNotFound("Client", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": clientResponse(client)})
}

// Create POST /api/clients. Every field is optional, so an empty body is
// accepted and yields a client with a null description.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewValidationError("Invalid JSON payload", nil)
		}
	}
	created, err := h.service.Create(c.UserContext(), domain.Client{Description: req.Description})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    clientBrief(created),
		"message": "Client created successfully",
	})
}

// Update PUT /api/clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid client id", nil)
	}
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	patch := req.ToPatch()
	if patch.Empty() {
		return util.NewValidationError("No data provided", nil)
	}

	updated, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Client", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    clientBrief(updated),
		"message": "Client updated successfully",
	})
}

// Delete DELETE /api/clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid client id", nil)
	}
	deleted, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Client", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Client deleted successfully",
	})
}

// Deactivate POST /api/clients/:id/deactivate.
func (h *ClientsHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid client id", nil)
	}
	updated, err := h.service.Deactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Client", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Client deactivated successfully",
	})
}

// Reactivate POST /api/clients/:id/reactivate.
func (h *ClientsHandler) Reactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid client id", nil)
	}
	updated, err := h.service.Reactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Client", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Client reactivated successfully",
	})
}

func clientResponse(cl *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:          cl.ID.String(),
		Description: cl.Description.Ptr(),
		CreatedAt:   cl.CreatedAt,
		Deactive:    cl.DeactiveAt,
	}
}

func clientSummary(cl *domain.Client) dto.ClientSummary {
	return dto.ClientSummary{
		ID:          cl.ID.String(),
		Description: cl.Description.Ptr(),
		CreatedAt:   cl.CreatedAt,
	}
}

func clientBrief(cl *domain.Client) dto.ClientBrief {
	return dto.ClientBrief{
		ID:          cl.ID.String(),
		Description: cl.Description.Ptr(),
	}
}
