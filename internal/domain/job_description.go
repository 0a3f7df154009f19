package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus enumerates the publication states of a job description.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusPaused JobStatus = "PAUSED"
	JobStatusClosed JobStatus = "CLOSED"
)

// Valid reports whether s is a known status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

// JobDescription is an open position published by a client. The status
// field and the deactivation timestamp are related but independently
// writable: change-status alone can leave them out of sync, and readers
// must not reconcile them.
type JobDescription struct {
	ID          uuid.UUID
	Description Field[string]
	MinSalary   float64
	MaxSalary   Field[float64]
	Status      JobStatus
	RecruiterID Field[int64]
	ClientID    Field[uuid.UUID]
	CreatedAt   *time.Time
	DeactiveAt  *time.Time
}

// Active reports whether the job description has not been soft-deleted.
func (j JobDescription) Active() bool { return j.DeactiveAt == nil }

// JobDescriptionPatch carries a partial update; only set fields are written.
type JobDescriptionPatch struct {
	Description Field[string]
	MinSalary   Field[float64]
	MaxSalary   Field[float64]
	Status      Field[JobStatus]
	RecruiterID Field[int64]
	ClientID    Field[uuid.UUID]
	DeactiveAt  Field[time.Time]
}

// Empty reports whether no field is set.
func (p JobDescriptionPatch) Empty() bool {
	return !p.Description.IsSet() && !p.MinSalary.IsSet() && !p.MaxSalary.IsSet() &&
		!p.Status.IsSet() && !p.RecruiterID.IsSet() && !p.ClientID.IsSet() &&
		!p.DeactiveAt.IsSet()
}
