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

// JobDescriptionsHandler manages job description endpoints, including the
// close/reopen/status lifecycle.
type JobDescriptionsHandler struct {
	service *service.JobDescriptionService
}

// NewJobDescriptionsHandler constructs handler.
func NewJobDescriptionsHandler(jobService *service.JobDescriptionService) *JobDescriptionsHandler {
	return &JobDescriptionsHandler{service: jobService}
}

// List GET /api/job-descriptions.
func (h *JobDescriptionsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return err
	}
	items := make([]dto.JobDescriptionResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobDescriptionResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Search GET /api/job-descriptions/search. Numeric filters that fail to
// parse are dropped rather than rejected; a malformed client_id is refused.
func (h *JobDescriptionsHandler) Search(c *fiber.Ctx) error {
	query := repository.JobDescriptionQuery{
		Status:       queryPtr(c, "status"),
		RecruiterID:  queryInt(c, "recruiter_id"),
		MinSalaryMin: queryFloat(c, "min_salary_min"),
		MinSalaryMax: queryFloat(c, "min_salary_max"),
	}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			return util.NewValidationError("Invalid client_id", nil)
		}
		query.ClientID = &clientID
	}

	jobs, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return err
	}
	items := make([]dto.JobDescriptionSummary, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobDescriptionSummary(&jobs[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// Get GET /api/job-descriptions/:id.
func (h *JobDescriptionsHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	job, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if job == nil {
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{"success": true, "data": jobDescriptionResponse(job)})
}

// Create POST /api/job-descriptions.
func (h *JobDescriptionsHandler) Create(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.CreateJobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("Invalid JSON payload", nil)
	}
	if len(dto.MissingFields(req)) > 0 {
		return util.NewValidationError("min_salary is required", nil)
	}

	job := domain.JobDescription{
		Description: req.Description,
		MinSalary:   *req.MinSalary,
		MaxSalary:   req.MaxSalary,
		Status:      domain.JobStatus(req.Status),
		RecruiterID: req.RecruiterID,
	}
	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return util.NewValidationError("Invalid client_id", nil)
		}
		job.ClientID = domain.NewField(clientID)
	}

	created, err := h.service.Create(c.UserContext(), job)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    jobDescriptionBrief(created),
		"message": "Job description created successfully",
	})
}

// Update PUT /api/job-descriptions/:id.
func (h *JobDescriptionsHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	if len(c.Body()) == 0 {
		return util.NewValidationError("No data provided", nil)
	}
	var req dto.UpdateJobDescriptionRequest
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
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    jobDescriptionBrief(updated),
		"message": "Job description updated successfully",
	})
}

// Delete DELETE /api/job-descriptions/:id.
func (h *JobDescriptionsHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	deleted, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job description deleted successfully",
	})
}

// Close POST /api/job-descriptions/:id/close.
func (h *JobDescriptionsHandler) Close(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	closed, err := h.service.Close(c.UserContext(), id)
	if err != nil {
		return err
	}
	if closed == nil {
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job description closed successfully",
	})
}

// Reopen POST /api/job-descriptions/:id/reopen.
func (h *JobDescriptionsHandler) Reopen(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	reopened, err := h.service.Reopen(c.UserContext(), id)
	if err != nil {
		return err
	}
	if reopened == nil {
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job description reopened successfully",
	})
}

// ChangeStatus PUT /api/job-descriptions/:id/status.
func (h *JobDescriptionsHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NewValidationError("Invalid job description id", nil)
	}
	var req dto.ChangeJobStatusRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return util.NewValidationError("Invalid JSON payload", nil)
		}
	}
	if req.Status == "" {
		return util.NewValidationError("Status is required", nil)
	}

	updated, err := h.service.ChangeStatus(c.UserContext(), id, domain.JobStatus(req.Status))
	if err != nil {
		return err
	}
	if updated == nil {
		return util.NewNotFound("Job description", nil)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.JobStatusResponse{
			ID:     updated.ID.String(),
			Status: updated.Status,
		},
		"message": "Status updated successfully",
	})
}

// queryInt returns the query parameter parsed as an integer, nil when
// absent or unparseable.
func queryInt(c *fiber.Ctx, key string) *int64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// queryFloat returns the query parameter parsed as a float, nil when
// absent or unparseable.
func queryFloat(c *fiber.Ctx, key string) *float64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func uuidFieldString(f domain.Field[uuid.UUID]) *string {
	if v, ok := f.Value(); ok {
		s := v.String()
		return &s
	}
	return nil
}

func jobDescriptionResponse(j *domain.JobDescription) dto.JobDescriptionResponse {
	return dto.JobDescriptionResponse{
		ID:          j.ID.String(),
		Description: j.Description.Ptr(),
		MinSalary:   j.MinSalary,
		MaxSalary:   j.MaxSalary.Ptr(),
		Status:      j.Status,
		RecruiterID: j.RecruiterID.Ptr(),
		ClientID:    uuidFieldString(j.ClientID),
		CreatedAt:   j.CreatedAt,
		DeactiveAt:  j.DeactiveAt,
	}
}

func jobDescriptionSummary(j *domain.JobDescription) dto.JobDescriptionSummary {
	return dto.JobDescriptionSummary{
		ID:          j.ID.String(),
		Description: j.Description.Ptr(),
		MinSalary:   j.MinSalary,
		MaxSalary:   j.MaxSalary.Ptr(),
		Status:      j.Status,
		RecruiterID: j.RecruiterID.Ptr(),
		ClientID:    uuidFieldString(j.ClientID),
	}
}

func jobDescriptionBrief(j *domain.JobDescription) dto.JobDescriptionBrief {
	return dto.JobDescriptionBrief{
		ID:          j.ID.String(),
		Description: j.Description.Ptr(),
		MinSalary:   j.MinSalary,
		MaxSalary:   j.MaxSalary.Ptr(),
		Status:      j.Status,
	}
}
