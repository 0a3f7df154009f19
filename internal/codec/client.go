package codec

import (
	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// ClientCodec maps the client table. The deployed table spells its
// deactivation column "deactive", unlike every other table.
type ClientCodec struct{}

func (ClientCodec) Table() string          { return "client" }
func (ClientCodec) ActivityColumn() string { return "deactive" }

func (ClientCodec) FromRow(row store.Row) (domain.Client, error) {
	r := rowReader{row: row}
	c := domain.Client{
		ID:          r.readUUID("id"),
		Description: r.readStringField("description"),
		CreatedAt:   r.readTime("created_at"),
		DeactiveAt:  r.readTime("deactive"),
	}
	if r.err != nil {
		return domain.Client{}, r.err
	}
	return c, nil
}

func (ClientCodec) ToRow(c domain.Client) (store.Row, error) {
	row := store.Row{}
	putField(row, "description", c.Description, wireString)
	if c.ID != uuid.Nil {
		row["id"] = c.ID.String()
	}
	if c.CreatedAt != nil {
		row["created_at"] = store.FormatTimestamp(*c.CreatedAt)
	}
	putTime(row, "deactive", c.DeactiveAt)
	return row, nil
}

// PatchRow encodes the set fields of a partial update.
func (ClientCodec) PatchRow(p domain.ClientPatch) store.Row {
	row := store.Row{}
	putField(row, "description", p.Description, wireString)
	putField(row, "deactive", p.DeactiveAt, wireTime)
	return row
}
