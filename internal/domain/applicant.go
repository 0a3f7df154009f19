package domain

import (
	"time"

	"github.com/google/uuid"
)

// Applicant is a candidate registered with the agency.
type Applicant struct {
	ID         uuid.UUID
	Name       string
	LastName   string
	LinkedIn   string
	Email      string
	Phone      string
	City       string
	English    string
	CreatedAt  *time.Time
	DeactiveAt *time.Time
}

// Active reports whether the applicant has not been soft-deleted.
func (a Applicant) Active() bool { return a.DeactiveAt == nil }

// ApplicantPatch carries a partial update; only set fields are written.
type ApplicantPatch struct {
	Name       Field[string]
	LastName   Field[string]
	LinkedIn   Field[string]
	Email      Field[string]
	Phone      Field[string]
	City       Field[string]
	English    Field[string]
	DeactiveAt Field[time.Time]
}

// Empty reports whether no field is set.
func (p ApplicantPatch) Empty() bool {
	return !p.Name.IsSet() && !p.LastName.IsSet() && !p.LinkedIn.IsSet() &&
		!p.Email.IsSet() && !p.Phone.IsSet() && !p.City.IsSet() &&
		!p.English.IsSet() && !p.DeactiveAt.IsSet()
}
