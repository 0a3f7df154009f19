package dto

import (
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// CreateClientRequest payload. Every field is optional; an empty body
// creates a client with a null description.
type CreateClientRequest struct {
	Description domain.Field[string] `json:"description"`
}

// UpdateClientRequest payload. The deactivation key follows the client
// table's column name.
type UpdateClientRequest struct {
	Description domain.Field[string]    `json:"description"`
	Deactive    domain.Field[time.Time] `json:"deactive"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateClientRequest) ToPatch() domain.ClientPatch {
	return domain.ClientPatch{
		Description: r.Description,
		DeactiveAt:  r.Deactive,
	}
}

// ClientResponse is the full client shape.
type ClientResponse struct {
	ID          string     `json:"id"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at"`
	Deactive    *time.Time `json:"deactive"`
}

// ClientSummary is the search result shape.
type ClientSummary struct {
	ID          string     `json:"id"`
	Description *string    `json:"description"`
	CreatedAt   *time.Time `json:"created_at"`
}

// ClientBrief is the create and update confirmation shape.
type ClientBrief struct {
	ID          string  `json:"id"`
	Description *string `json:"description"`
}
