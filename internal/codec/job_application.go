package codec

import (
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// JobApplicationCodec maps the applicant_job_apply table, the one table
// keyed by a store-assigned integer instead of a uuid.
type JobApplicationCodec struct{}

func (JobApplicationCodec) Table() string          { return "applicant_job_apply" }
func (JobApplicationCodec) ActivityColumn() string { return "deactive_at" }

func (JobApplicationCodec) FromRow(row store.Row) (domain.JobApplication, error) {
	r := rowReader{row: row}
	a := domain.JobApplication{
		ID:               r.readInt("id"),
		ApplicantID:      r.readUUID("applicant_id"),
		JobDescriptionID: r.readUUID("job_description_id"),
		RecruiterID:      r.readUUIDField("recruiter_id"),
		CreatedAt:        r.readTime("created_at"),
		DeactiveAt:       r.readTime("deactive_at"),
	}
	if r.err != nil {
		return domain.JobApplication{}, r.err
	}
	return a, nil
}

func (JobApplicationCodec) ToRow(a domain.JobApplication) (store.Row, error) {
	row := store.Row{}
	if a.ApplicantID != uuid.Nil {
		row["applicant_id"] = a.ApplicantID.String()
	}
	if a.JobDescriptionID != uuid.Nil {
		row["job_description_id"] = a.JobDescriptionID.String()
	}
	putField(row, "recruiter_id", a.RecruiterID, wireUUID)
	if a.ID != 0 {
		row["id"] = a.ID
	}
	if a.CreatedAt != nil {
		row["created_at"] = store.FormatTimestamp(*a.CreatedAt)
	}
	putTime(row, "deactive_at", a.DeactiveAt)
	return row, nil
}

// PatchRow encodes the set fields of a partial update.
func (JobApplicationCodec) PatchRow(p domain.JobApplicationPatch) store.Row {
	row := store.Row{}
	putField(row, "applicant_id", p.ApplicantID, wireUUID)
	putField(row, "job_description_id", p.JobDescriptionID, wireUUID)
	putField(row, "recruiter_id", p.RecruiterID, wireUUID)
	putField(row, "deactive_at", p.DeactiveAt, wireTime)
	return row
}
