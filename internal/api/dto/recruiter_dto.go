package dto

import (
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// CreateRecruiterRequest payload.
type CreateRecruiterRequest struct {
	Name        string               `json:"name" validate:"required"`
	Description domain.Field[string] `json:"description"`
}

// UpdateRecruiterRequest payload. Absent keys leave fields untouched.
type UpdateRecruiterRequest struct {
	Name        domain.Field[string]    `json:"name"`
	Description domain.Field[string]    `json:"description"`
	DeactiveAt  domain.Field[time.Time] `json:"deactive_at"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateRecruiterRequest) ToPatch() domain.RecruiterPatch {
	return domain.RecruiterPatch{
		Name:        r.Name,
		Description: r.Description,
		DeactiveAt:  r.DeactiveAt,
	}
}

// RecruiterResponse is the full recruiter shape.
type RecruiterResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at"`
	DeactiveAt  *time.Time `json:"deactive_at"`
}

// RecruiterSummary is the search result and confirmation shape.
type RecruiterSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}
