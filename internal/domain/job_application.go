package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobApplication links an applicant to a job description, optionally with
// the recruiter handling the match. Its id is a store-assigned integer.
type JobApplication struct {
	ID               int64
	ApplicantID      uuid.UUID
	JobDescriptionID uuid.UUID
	RecruiterID      Field[uuid.UUID]
	CreatedAt        *time.Time
	DeactiveAt       *time.Time
}

// Active reports whether the application has not been soft-deleted.
func (a JobApplication) Active() bool { return a.DeactiveAt == nil }

// JobApplicationPatch carries a partial update; only set fields are written.
type JobApplicationPatch struct {
	ApplicantID      Field[uuid.UUID]
	JobDescriptionID Field[uuid.UUID]
	RecruiterID      Field[uuid.UUID]
	DeactiveAt       Field[time.Time]
}

// Empty reports whether no field is set.
func (p JobApplicationPatch) Empty() bool {
	return !p.ApplicantID.IsSet() && !p.JobDescriptionID.IsSet() &&
		!p.RecruiterID.IsSet() && !p.DeactiveAt.IsSet()
}
