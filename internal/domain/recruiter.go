package domain

import "time"

// Recruiter is an agency staff member who sources and assigns candidates.
type Recruiter struct {
	ID          RecruiterID
	Name        string
	Description Field[string]
	CreatedAt   *time.Time
	DeactiveAt  *time.Time
}

// Active reports whether the recruiter has not been soft-deleted.
func (r Recruiter) Active() bool { return r.DeactiveAt == nil }

// RecruiterPatch carries a partial update; only set fields are written.
type RecruiterPatch struct {
	Name        Field[string]
	Description Field[string]
	DeactiveAt  Field[time.Time]
}

// Empty reports whether no field is set.
func (p RecruiterPatch) Empty() bool {
	return !p.Name.IsSet() && !p.Description.IsSet() && !p.DeactiveAt.IsSet()
}
