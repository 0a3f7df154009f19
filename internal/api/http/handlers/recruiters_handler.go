package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alegonzalezz/ATS-backend/internal/api/dto"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// RecruitersHandler manages recruiter endpoints. Path ids pass through
// domain.ParseRecruiterIDString, so integer and uuid identifiers both
// address the same records.
type RecruitersHandler struct {
	service *service.RecruiterService
}

// NewRecruitersHandler constructs handler.
func NewRecruitersHandler(recruiterService *service.RecruiterService) *RecruitersHandler {
	return &RecruitersHandler{service: recruiterService}
}

// List GET /api/recruiters.
func (h *RecruitersHandler) List(c *fiber.Ctx) error {
	recruiters, err := h.service.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	items := make([]dto.RecruiterResponse, 0, len(recruiters))
	for i := range recruiters {
		items = append(items, recruiterResponse(&recruiters[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Search GET /api/recruiters/search.
func (h *RecruitersHandler) Search(c *fiber.Ctx) error {
	query := repository.RecruiterQuery{
		Name:        queryPtr(c, "name"),
		Description: queryPtr(c, "description"),
	}
	recruiters, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	items := make([]dto.RecruiterSummary, 0, len(recruiters))
	for i := range recruiters {
		items = append(items, recruiterSummary(&recruiters[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Get GET /api/recruiters/:id.
func (h *RecruitersHandler) Get(c *fiber.Ctx) error {
	id := domain.ParseRecruiterIDString(c.Params("id"))
	recruiter, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if recruiter == nil {
		return util.NewNotFound("Recruiter", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": recruiterResponse(recruiter)})
}

// Create POST /api/recruiters.
func (h *RecruitersHandler) Create(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("Name is required", nil)
	}
	var req dto.CreateRecruiterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if len(dto.MissingFields(req)) > 0 {
		return util.NewValidationError("Name is required", nil)
	}

	created, err := h.service.Create(c.UserContext(), domain.Recruiter{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    recruiterSummary(created),
		"message": "Recruiter created successfully",
	})
}

// Update PUT /api/recruiters/:id.
func (h *RecruitersHandler) Update(c *fiber.Ctx) error {
	id := domain.ParseRecruiterIDString(c.Params("id"))
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.UpdateRecruiterRequest
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
		return util.NewNotFound("Recruiter", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    recruiterSummary(updated),
		"message": "Recruiter updated successfully",
	})
}

// Delete DELETE /api/recruiters/:id.
func (h *RecruitersHandler) Delete(c *fiber.Ctx) error {
	id := domain.ParseRecruiterIDString(c.Params("id"))
	deleted, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Recruiter", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recruiter deleted successfully",
	})
}

// Deactivate POST /api/recruiters/:id/deactivate.
func (h *RecruitersHandler) Deactivate(c *fiber.Ctx) error {
	id := domain.ParseRecruiterIDString(c.Params("id"))
	updated, err := h.service.Deactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Recruiter", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recruiter deactivated successfully",
	})
}

// Reactivate POST /api/recruiters/:id/reactivate.
func (h *RecruitersHandler) Reactivate(c *fiber.Ctx) error {
	id := domain.ParseRecruiterIDString(c.Params("id"))
	updated, err := h.service.Reactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Recruiter", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recruiter reactivated successfully",
	})
}

func recruiterResponse(r *domain.Recruiter) dto.RecruiterResponse {
	return dto.RecruiterResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description.Ptr(),
		CreatedAt:   r.CreatedAt,
		DeactiveAt:  r.DeactiveAt,
	}
}

func recruiterSummary(r *domain.Recruiter) dto.RecruiterSummary {
	return dto.RecruiterSummary{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description.Ptr(),
	}
}
