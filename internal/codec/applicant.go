package codec

import (
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// ApplicantCodec maps the applicants table.
type ApplicantCodec struct{}

func (ApplicantCodec) Table() string          { return "applicants" }
func (ApplicantCodec) ActivityColumn() string { return "deactive_at" }

func (ApplicantCodec) FromRow(row store.Row) (domain.Applicant, error) {
	r := rowReader{row: row}
	a := domain.Applicant{
		ID:         r.readUUID("id"),
		Name:       r.readString("name"),
		LastName:   r.readString("last_name"),
		LinkedIn:   r.readString("linkedin"),
		Email:      r.readString("email"),
		Phone:      r.readString("phone"),
		City:       r.readString("city"),
		English:    r.readString("english"),
		CreatedAt:  r.readTime("created_at"),
		DeactiveAt: r.readTime("deactive_at"),
	}
	if r.err != nil {
		return domain.Applicant{}, r.err
	}
	return a, nil
}

func (ApplicantCodec) ToRow(a domain.Applicant) (store.Row, error) {
	row := store.Row{
		"name":      a.Name,
		"last_name": a.LastName,
		"linkedin":  a.LinkedIn,
		"email":     a.Email,
		"phone":     a.Phone,
		"city":      a.City,
		"english":   a.English,
	}
	if a.ID != uuid.Nil {
		row["id"] = a.ID.String()
	}
	if a.CreatedAt != nil {
		row["created_at"] = store.FormatTimestamp(*a.CreatedAt)
	}
	putTime(row, "deactive_at", a.DeactiveAt)
	return row, nil
}

// PatchRow encodes the set fields of a partial update.
func (ApplicantCodec) PatchRow(p domain.ApplicantPatch) store.Row {
	row := store.Row{}
	putField(row, "name", p.Name, wireString)
	putField(row, "last_name", p.LastName, wireString)
	putField(row, "linkedin", p.LinkedIn, wireString)
	putField(row, "email", p.Email, wireString)
	putField(row, "phone", p.Phone, wireString)
	putField(row, "city", p.City, wireString)
	putField(row, "english", p.English, wireString)
	putField(row, "deactive_at", p.DeactiveAt, wireTime)
	return row
}
