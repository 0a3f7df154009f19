package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// CreateJobApplicationRequest payload. The ids arrive as strings and are
// parsed by the handler.
type CreateJobApplicationRequest struct {
	ApplicantID      string `json:"applicant_id" validate:"required"`
	JobDescriptionID string `json:"job_description_id" validate:"required"`
	RecruiterID      string `json:"recruiter_id"`
}

// UpdateJobApplicationRequest payload. Absent keys leave fields untouched.
type UpdateJobApplicationRequest struct {
	ApplicantID      domain.Field[uuid.UUID] `json:"applicant_id"`
	JobDescriptionID domain.Field[uuid.UUID] `json:"job_description_id"`
	RecruiterID      domain.Field[uuid.UUID] `json:"recruiter_id"`
	DeactiveAt       domain.Field[time.Time] `json:"deactive_at"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateJobApplicationRequest) ToPatch() domain.JobApplicationPatch {
	return domain.JobApplicationPatch{
		ApplicantID:      r.ApplicantID,
		JobDescriptionID: r.JobDescriptionID,
		RecruiterID:      r.RecruiterID,
		DeactiveAt:       r.DeactiveAt,
	}
}

// AssignRecruiterRequest payload.
type AssignRecruiterRequest struct {
	RecruiterID string `json:"recruiter_id" validate:"required"`
}

// JobApplicationResponse is the full application shape.
type JobApplicationResponse struct {
	ID               int64      `json:"id"`
	ApplicantID      string     `json:"applicant_id"`
	JobDescriptionID string     `json:"job_description_id"`
	RecruiterID      *string    `json:"recruiter_id"`
	CreatedAt        *time.Time `json:"created_at"`
	DeactiveAt       *time.Time `json:"deactive_at"`
}

// JobApplicationSummary is the search result and create confirmation shape.
type JobApplicationSummary struct {
	ID               int64      `json:"id"`
	ApplicantID      string     `json:"applicant_id"`
	JobDescriptionID string     `json:"job_description_id"`
	RecruiterID      *string    `json:"recruiter_id"`
	CreatedAt        *time.Time `json:"created_at"`
}

// JobApplicationBrief is the update confirmation shape.
type JobApplicationBrief struct {
	ID               int64   `json:"id"`
	ApplicantID      string  `json:"applicant_id"`
	JobDescriptionID string  `json:"job_description_id"`
	RecruiterID      *string `json:"recruiter_id"`
}

// RecruiterAssignmentResponse confirms an assignment change.
type RecruiterAssignmentResponse struct {
	ID          int64   `json:"id"`
	RecruiterID *string `json:"recruiter_id"`
}
