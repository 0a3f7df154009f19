package codec

import (
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// RecruiterCodec maps the recruiter table. Deployed data mixes integer and
// uuid ids in the id column, so decoding preserves whichever form arrives.
type RecruiterCodec struct{}

func (RecruiterCodec) Table() string          { return "recruiter" }
func (RecruiterCodec) ActivityColumn() string { return "deactive_at" }

func (RecruiterCodec) FromRow(row store.Row) (domain.Recruiter, error) {
	r := rowReader{row: row}
	rec := domain.Recruiter{
		ID:          domain.ParseRecruiterID(row["id"]),
		Name:        r.readString("name"),
		Description: r.readStringField("description"),
		CreatedAt:   r.readTime("created_at"),
		DeactiveAt:  r.readTime("deactive_at"),
	}
	if r.err != nil {
		return domain.Recruiter{}, r.err
	}
	return rec, nil
}

func (RecruiterCodec) ToRow(rec domain.Recruiter) (store.Row, error) {
	row := store.Row{
		"name": rec.Name,
	}
	putField(row, "description", rec.Description, wireString)
	if !rec.ID.IsZero() {
		row["id"] = rec.ID.WireValue()
	}
	if rec.CreatedAt != nil {
		row["created_at"] = store.FormatTimestamp(*rec.CreatedAt)
	}
	putTime(row, "deactive_at", rec.DeactiveAt)
	return row, nil
}

// PatchRow encodes the set fields of a partial update.
func (RecruiterCodec) PatchRow(p domain.RecruiterPatch) store.Row {
	row := store.Row{}
	putField(row, "name", p.Name, wireString)
	putField(row, "description", p.Description, wireString)
	putField(row, "deactive_at", p.DeactiveAt, wireTime)
	return row
}
