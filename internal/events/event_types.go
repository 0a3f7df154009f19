package events

import (
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntityCreated       EventType = "entity_created"
	EventEntityUpdated       EventType = "entity_updated"
	EventEntityDeleted       EventType = "entity_deleted"
	EventEntityDeactivated   EventType = "entity_deactivated"
	EventEntityReactivated   EventType = "entity_reactivated"
	EventJobStatusChanged    EventType = "job_status_changed"
	EventRecruiterAssigned   EventType = "recruiter_assigned"
	EventRecruiterUnassigned EventType = "recruiter_unassigned"
)

// Event represents a record change emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Table     string    `json:"table"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// JobStatusChangedPayload payload.
type JobStatusChangedPayload struct {
	OldStatus domain.JobStatus `json:"old_status"`
	NewStatus domain.JobStatus `json:"new_status"`
}

// RecruiterAssignmentPayload payload.
type RecruiterAssignmentPayload struct {
	RecruiterID string `json:"recruiter_id,omitempty"`
}
