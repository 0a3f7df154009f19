package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/api/dto"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// JobApplicationsHandler manages application endpoints, including recruiter
// assignment.
type JobApplicationsHandler struct {
	service *service.JobApplicationService
}

// NewJobApplicationsHandler constructs handler.
func NewJobApplicationsHandler(applicationService *service.JobApplicationService) *JobApplicationsHandler {
	return &JobApplicationsHandler{service: applicationService}
}

func applicationID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, util.NewValidationError("Invalid application id", nil)
	}
	return id, nil
}

// List GET /api/applicant-job-applications.
func (h *JobApplicationsHandler) List(c *fiber.Ctx) error {
	applications, err := h.service.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	items := make([]dto.JobApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, jobApplicationResponse(&applications[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Search GET /api/applicant-job-applications/search.
func (h *JobApplicationsHandler) Search(c *fiber.Ctx) error {
	var query repository.JobApplicationQuery
	if raw := c.Query("applicant_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.NewValidationError("Invalid applicant_id", nil)
		}
		query.ApplicantID = &id
	}
	if raw := c.Query("job_description_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.NewValidationError("Invalid job_description_id", nil)
		}
		query.JobDescriptionID = &id
	}
	if raw := c.Query("recruiter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return util.NewValidationError("Invalid recruiter_id", nil)
		}
		query.RecruiterID = &id
	}

	applications, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	items := make([]dto.JobApplicationSummary, 0, len(applications))
	for i := range applications {
		items = append(items, jobApplicationSummary(&applications[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Get GET /api/applicant-job-applications/:id.
func (h *JobApplicationsHandler) Get(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	application, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if application == nil {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": jobApplicationResponse(application)})
}

// Create POST /api/applicant-job-applications.
func (h *JobApplicationsHandler) Create(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.CreateJobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if missing := dto.MissingFields(req); len(missing) > 0 {
		return util.NewValidationError(missing[0]+" is required", nil)
	}

	applicantID, err := uuid.Parse(req.ApplicantID)
	if err != nil {
		return util.NewValidationError("Invalid applicant_id", nil)
	}
	jobDescriptionID, err := uuid.Parse(req.JobDescriptionID)
	if err != nil {
		return util.NewValidationError("Invalid job_description_id", nil)
	}
	application := domain.JobApplication{
		ApplicantID:      applicantID,
		JobDescriptionID: jobDescriptionID,
	}
	if req.RecruiterID != "" {
		recruiterID, err := uuid.Parse(req.RecruiterID)
		if err != nil {
			return util.NewValidationError("Invalid recruiter_id", nil)
		}
		application.RecruiterID = domain.NewField(recruiterID)
	}

	created, err := h.service.Create(c.UserContext(), application)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    jobApplicationSummary(created),
		"message": "Job application created successfully",
	})
}

// Update PUT /api/applicant-job-applications/:id.
func (h *JobApplicationsHandler) Update(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.UpdateJobApplicationRequest
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
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    jobApplicationBrief(updated),
		"message": "Job application updated successfully",
	})
}

// Delete DELETE /api/applicant-job-applications/:id.
func (h *JobApplicationsHandler) Delete(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	deleted, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job application deleted successfully",
	})
}

// Deactivate POST /api/applicant-job-applications/:id/deactivate.
func (h *JobApplicationsHandler) Deactivate(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	updated, err := h.service.Deactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job application deactivated successfully",
	})
}

// Reactivate POST /api/applicant-job-applications/:id/reactivate.
func (h *JobApplicationsHandler) Reactivate(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	updated, err := h.service.Reactivate(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job application reactivated successfully",
	})
}

// AssignRecruiter POST /api/applicant-job-applications/:id/assign-recruiter.
func (h *JobApplicationsHandler) AssignRecruiter(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	var req dto.AssignRecruiterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewValidationError("Invalid JSON payload", nil)
		}
	}
	if req.RecruiterID == "" {
		return util.NewValidationError("recruiter_id is required", nil)
	}
	recruiterID, err := uuid.Parse(req.RecruiterID)
	if err != nil {
		return util.NewValidationError("Invalid recruiter_id", nil)
	}

	updated, err := h.service.AssignRecruiter(c.UserContext(), id, recruiterID)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.RecruiterAssignmentResponse{
			ID:          updated.ID,
			RecruiterID: uuidFieldString(updated.RecruiterID),
		},
		"message": "Recruiter assigned successfully",
	})
}

// UnassignRecruiter POST /api/applicant-job-applications/:id/unassign-recruiter.
func (h *JobApplicationsHandler) UnassignRecruiter(c *fiber.Ctx) error {
	id, err := applicationID(c)
	if err != nil {
		return err
	}
	updated, err := h.service.UnassignRecruiter(c.UserContext(), id)
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Job application", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Recruiter unassigned successfully",
	})
}

func jobApplicationResponse(a *domain.JobApplication) dto.JobApplicationResponse {
	return dto.JobApplicationResponse{
		ID:               a.ID,
		ApplicantID:      a.ApplicantID.String(),
		JobDescriptionID: a.JobDescriptionID.String(),
		RecruiterID:      uuidFieldString(a.RecruiterID),
		CreatedAt:        a.CreatedAt,
		DeactiveAt:       a.DeactiveAt,
	}
}

func jobApplicationSummary(a *domain.JobApplication) dto.JobApplicationSummary {
	return dto.JobApplicationSummary{
		ID:               a.ID,
		ApplicantID:      a.ApplicantID.String(),
		JobDescriptionID: a.JobDescriptionID.String(),
		RecruiterID:      uuidFieldString(a.RecruiterID),
		CreatedAt:        a.CreatedAt,
	}
}

func jobApplicationBrief(a *domain.JobApplication) dto.JobApplicationBrief {
	return dto.JobApplicationBrief{
		ID:               a.ID,
		ApplicantID:      a.ApplicantID.String(),
		JobDescriptionID: a.JobDescriptionID.String(),
		RecruiterID:      uuidFieldString(a.RecruiterID),
	}
}
