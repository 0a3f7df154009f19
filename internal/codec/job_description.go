package codec

import (
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// JobDescriptionCodec maps the job_description table.
type JobDescriptionCodec struct{}

func (JobDescriptionCodec) Table() string          { return "job_description" }
func (JobDescriptionCodec) ActivityColumn() string { return "deactive_at" }

func (JobDescriptionCodec) FromRow(row store.Row) (domain.JobDescription, error) {
	r := rowReader{row: row}
	j := domain.JobDescription{
		ID:          r.readUUID("id"),
		Description: r.readStringField("description"),
		MinSalary:   r.readFloat("min_salary"),
		MaxSalary:   r.readFloatField("max_salary"),
		Status:      domain.JobStatus(r.readString("status")),
		RecruiterID: r.readIntField("recruiter_id"),
		ClientID:    r.readUUIDField("client_id"),
		CreatedAt:   r.readTime("created_at"),
		DeactiveAt:  r.readTime("deactive_at"),
	}
	if r.err != nil {
		return domain.JobDescription{}, r.err
	}
	if j.Status == "" {
		j.Status = domain.JobStatusOpen
	}
	return j, nil
}

func (JobDescriptionCodec) ToRow(j domain.JobDescription) (store.Row, error) {
	status := j.Status
	if status == "" {
		status = domain.JobStatusOpen
	}
	row := store.Row{
		"min_salary": j.MinSalary,
		"status":     string(status),
	}
	putField(row, "description", j.Description, wireString)
	putField(row, "max_salary", j.MaxSalary, wireFloat)
	putField(row, "recruiter_id", j.RecruiterID, wireInt)
	putField(row, "client_id", j.ClientID, wireUUID)
	if j.ID != uuid.Nil {
		row["id"] = j.ID.String()
	}
	if j.CreatedAt != nil {
		row["created_at"] = store.FormatTimestamp(*j.CreatedAt)
	}
	putTime(row, "deactive_at", j.DeactiveAt)
	return row, nil
}

// PatchRow encodes the set fields of a partial update.
func (JobDescriptionCodec) PatchRow(p domain.JobDescriptionPatch) store.Row {
	row := store.Row{}
	putField(row, "description", p.Description, wireString)
	putField(row, "min_salary", p.MinSalary, wireFloat)
	putField(row, "max_salary", p.MaxSalary, wireFloat)
	putField(row, "status", p.Status, wireStatus)
	putField(row, "recruiter_id", p.RecruiterID, wireInt)
	putField(row, "client_id", p.ClientID, wireUUID)
	putField(row, "deactive_at", p.DeactiveAt, wireTime)
	return row
}
