package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// CreateJobDescriptionRequest payload. Status defaults to OPEN and
// client_id is parsed by the handler so a bad uuid reads as a validation
// failure rather than a store error.
type CreateJobDescriptionRequest struct {
	Description domain.Field[string]  `json:"description"`
	MinSalary   *float64              `json:"min_salary" validate:"required"`
	MaxSalary   domain.Field[float64] `json:"max_salary"`
	Status      string                `json:"status"`
	RecruiterID domain.Field[int64]   `json:"recruiter_id"`
	ClientID    string                `json:"client_id"`
}

// UpdateJobDescriptionRequest payload. Absent keys leave fields untouched.
type UpdateJobDescriptionRequest struct {
	Description domain.Field[string]           `json:"description"`
	MinSalary   domain.Field[float64]          `json:"min_salary"`
	MaxSalary   domain.Field[float64]          `json:"max_salary"`
	Status      domain.Field[domain.JobStatus] `json:"status"`
	RecruiterID domain.Field[int64]            `json:"recruiter_id"`
	ClientID    domain.Field[uuid.UUID]        `json:"client_id"`
	DeactiveAt  domain.Field[time.Time]        `json:"deactive_at"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateJobDescriptionRequest) ToPatch() domain.JobDescriptionPatch {
	return domain.JobDescriptionPatch{
		Description: r.Description,
		MinSalary:   r.MinSalary,
		MaxSalary:   r.MaxSalary,
		Status:      r.Status,
		RecruiterID: r.RecruiterID,
		ClientID:    r.ClientID,
		DeactiveAt:  r.DeactiveAt,
	}
}

// ChangeJobStatusRequest payload.
type ChangeJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// JobDescriptionResponse is the full job description shape.
type JobDescriptionResponse struct {
	ID          string           `json:"id"`
	Description *string          `json:"description"`
	MinSalary   float64          `json:"min_salary"`
	MaxSalary   *float64         `json:"max_salary"`
	Status      domain.JobStatus `json:"status"`
	RecruiterID *int64           `json:"recruiter_id"`
	ClientID    *string          `json:"client_id"`
	CreatedAt   *time.Time       `json:"created_at"`
	DeactiveAt  *time.Time       `json:"deactive_at"`
}

// JobDescriptionSummary is the search result shape.
type JobDescriptionSummary struct {
	ID          string           `json:"id"`
	Description *string          `json:"description"`
	MinSalary   float64          `json:"min_salary"`
	MaxSalary   *float64         `json:"max_salary"`
	Status      domain.JobStatus `json:"status"`
	RecruiterID *int64           `json:"recruiter_id"`
	ClientID    *string          `json:"client_id"`
}

// JobDescriptionBrief is the create and update confirmation shape.
type JobDescriptionBrief struct {
	ID          string           `json:"id"`
	Description *string          `json:"description"`
	MinSalary   float64          `json:"min_salary"`
	MaxSalary   *float64         `json:"max_salary"`
	Status      domain.JobStatus `json:"status"`
}

// JobStatusResponse confirms a status change.
type JobStatusResponse struct {
	ID     string           `json:"id"`
	Status domain.JobStatus `json:"status"`
}
