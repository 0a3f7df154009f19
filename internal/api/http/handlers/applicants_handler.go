package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/api/dto"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// ApplicantsHandler manages applicant endpoints.
type ApplicantsHandler struct {
	service *service.ApplicantService
}

// NewApplicantsHandler constructs handler.
func NewApplicantsHandler(applicantService *service.ApplicantService) *ApplicantsHandler {
	return &ApplicantsHandler{service: applicantService}
}

// List GET /api/applicants.
func (h *ApplicantsHandler) List(c *fiber.Ctx) error {
	applicants, err := h.service.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	items := make([]dto.ApplicantResponse, 0, len(applicants))
	for i := range applicants {
		items = append(items, applicantResponse(&applicants[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Search GET /api/applicants/search.
func (h *ApplicantsHandler) Search(c *fiber.Ctx) error {
	query := repository.ApplicantQuery{
		Name:    queryPtr(c, "name"),
		City:    queryPtr(c, "city"),
		English: queryPtr(c, "english"),
		Email:   queryPtr(c, "email"),
	}
	applicants, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicantSummary, 0, len(applicants))
	for i := range applicants {
		items = append(items, applicantSummary(&applicants[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Get GET /api/applicants/:id.
func (h *ApplicantsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid applicant id", nil)
	}
	applicant, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if applicant == nil {
		return util.NewNotFound("Applicant", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": applicantResponse(applicant)})
}

// Create POST /api/applicants.
func (h *ApplicantsHandler) Create(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.CreateApplicantRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if missing := dto.MissingFields(req); len(missing) > 0 {
		return util.NewValidationError("Missing fields: "+strings.Join(missing, ", "), nil)
	}

	created, err := h.service.Create(c.UserContext(), domain.Applicant{
		Name:     req.Name,
		LastName: req.LastName,
		LinkedIn: req.LinkedIn,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		English:  req.English,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    applicantBrief(created),
		"message": "Applicant created successfully",
	})
}

// Update PUT /api/applicants/:id.
func (h *ApplicantsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid applicant id", nil)
	}
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.UpdateApplicantRequest
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
		return util.NewNotFound("Applicant", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    applicantBrief(updated),
		"message": "Applicant updated successfully",
	})
}

// Delete DELETE /api/applicants/:id.
func (h *ApplicantsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid applicant id", nil)
	}
	deleted, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Applicant", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Applicant deleted successfully",
	})
}

// Deactivate POST /api/applicants/:id/deactivate.
func (h *ApplicantsHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid applicant id", nil)
	}
	updated, err := h.service.Deactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Applicant", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Applicant deactivated successfully",
	})
}

// Reactivate POST /api/applicants/:id/reactivate.
func (h *ApplicantsHandler) Reactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid applicant id", nil)
	}
	updated, err := h.service.Reactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Applicant", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Applicant reactivated successfully",
	})
}

// queryPtr returns the query parameter value, nil when absent or empty.
func queryPtr(c *fiber.Ctx, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func applicantResponse(a *domain.Applicant) dto.ApplicantResponse {
	return dto.ApplicantResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		LastName:   a.LastName,
		LinkedIn:   a.LinkedIn,
		Email:      a.Email,
		Phone:      a.Phone,
		City:       a.City,
		English:    a.English,
		CreatedAt:  a.CreatedAt,
		DeactiveAt: a.DeactiveAt,
	}
}

func applicantSummary(a *domain.Applicant) dto.ApplicantSummary {
	return dto.ApplicantSummary{
		ID:       a.ID.String(),
		Name:     a.Name,
		LastName: a.LastName,
		LinkedIn: a.LinkedIn,
		Email:    a.Email,
		Phone:    a.Phone,
		City:     a.City,
		English:  a.English,
	}
}

func applicantBrief(a *domain.Applicant) dto.ApplicantBrief {
	return dto.ApplicantBrief{
		ID:       a.ID.String(),
		Name:     a.Name,
		LastName: a.LastName,
		Email:    a.Email,
	}
}
