package dto

import (
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// CreateApplicantRequest payload.
type CreateApplicantRequest struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	City     string `json:"city" validate:"required"`
	English  string `json:"english" validate:"required"`
}

// UpdateApplicantRequest payload. Absent keys leave fields untouched.
type UpdateApplicantRequest struct {
	Name       domain.Field[string]    `json:"name"`
	LastName   domain.Field[string]    `json:"last_name"`
	LinkedIn   domain.Field[string]    `json:"linkedin"`
	Email      domain.Field[string]    `json:"email"`
	Phone      domain.Field[string]    `json:"phone"`
	City       domain.Field[string]    `json:"city"`
	English    domain.Field[string]    `json:"english"`
	DeactiveAt domain.Field[time.Time] `json:"deactive_at"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateApplicantRequest) ToPatch() domain.ApplicantPatch {
	return domain.ApplicantPatch{
		Name:       r.Name,
		LastName:   r.LastName,
		LinkedIn:   r.LinkedIn,
		Email:      r.Email,
		Phone:      r.Phone,
		City:       r.City,
		English:    r.English,
		DeactiveAt: r.DeactiveAt,
	}
}

// ApplicantResponse is the full applicant shape.
type ApplicantResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastName   string     `json:"last_name"`
	LinkedIn   string     `json:"linkedin"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	City       string     `json:"city"`
	English    string     `json:"english"`
	CreatedAt  *time.Time `json:"created_at"`
	DeactiveAt *time.Time `json:"deactive_at"`
}

// ApplicantSummary is the search result shape.
type ApplicantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	English  string `json:"english"`
}

// ApplicantBrief is the create and update confirmation shape.
type ApplicantBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}
