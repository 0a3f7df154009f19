// Package codec converts between domain entities and the wire rows the
// record store deals in. Encoding omits absent optional fields so store
// defaults apply; decoding keeps the absent/null/value distinction and
// fails fast on malformed identifiers and timestamps.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// Codec converts one entity type to and from wire rows.
type Codec[E any] interface {
	// Table is the physical table name in the record store.
	Table() string
	// ActivityColumn is the nullable deactivation timestamp column.
	ActivityColumn() string
	// FromRow decodes a stored row into an entity.
	FromRow(row store.Row) (E, error)
	// ToRow encodes an entity for insertion, omitting store-assigned and
	// absent fields.
	ToRow(e E) (store.Row, error)
}

func badValue(col string, v any, want string) error {
	return util.NewValidationError(
		fmt.Sprintf("invalid value for %s", col),
		map[string]any{"column": col, "value": fmt.Sprintf("%v", v), "expected": want},
	)
}

// rowReader reads typed column values off a wire row, keeping the first
// error it encounters so codecs can decode in one expression.
type rowReader struct {
	row store.Row
	err error
}

func (r *rowReader) readString(col string) string {
	v, ok := r.row[col]
	if r.err != nil || !ok || v == nil {
		return ""
	}
	s, isStr := v.(string)
	if !isStr {
		r.err = badValue(col, v, "string")
		return ""
	}
	return s
}

func (r *rowReader) readStringField(col string) domain.Field[string] {
	v, ok := r.row[col]
	if r.err != nil || !ok {
		return domain.Field[string]{}
	}
	if v == nil {
		return domain.NullField[string]()
	}
	s, isStr := v.(string)
	if !isStr {
		r.err = badValue(col, v, "string")
		return domain.Field[string]{}
	}
	return domain.NewField(s)
}

func (r *rowReader) readFloat(col string) float64 {
	v, ok := r.row[col]
	if r.err != nil || !ok || v == nil {
		return 0
	}
	f, err := numberValue(col, v)
	if err != nil {
		r.err = err
		return 0
	}
	return f
}

func (r *rowReader) readFloatField(col string) domain.Field[float64] {
	v, ok := r.row[col]
	if r.err != nil || !ok {
		return domain.Field[float64]{}
	}
	if v == nil {
		return domain.NullField[float64]()
	}
	f, err := numberValue(col, v)
	if err != nil {
		r.err = err
		return domain.Field[float64]{}
	}
	return domain.NewField(f)
}

func (r *rowReader) readInt(col string) int64 {
	v, ok := r.row[col]
	if r.err != nil || !ok || v == nil {
		return 0
	}
	n, err := wholeNumber(col, v)
	if err != nil {
		r.err = err
		return 0
	}
	return n
}

func (r *rowReader) readIntField(col string) domain.Field[int64] {
	v, ok := r.row[col]
	if r.err != nil || !ok {
		return domain.Field[int64]{}
	}
	if v == nil {
		return domain.NullField[int64]()
	}
	n, err := wholeNumber(col, v)
	if err != nil {
		r.err = err
		return domain.Field[int64]{}
	}
	return domain.NewField(n)
}

func (r *rowReader) readUUID(col string) uuid.UUID {
	v, ok := r.row[col]
	if r.err != nil || !ok || v == nil {
		return uuid.Nil
	}
	u, err := uuidFromWire(col, v)
	if err != nil {
		r.err = err
		return uuid.Nil
	}
	return u
}

func (r *rowReader) readUUIDField(col string) domain.Field[uuid.UUID] {
	v, ok := r.row[col]
	if r.err != nil || !ok {
		return domain.Field[uuid.UUID]{}
	}
	if v == nil {
		return domain.NullField[uuid.UUID]()
	}
	u, err := uuidFromWire(col, v)
	if err != nil {
		r.err = err
		return domain.Field[uuid.UUID]{}
	}
	return domain.NewField(u)
}

func (r *rowReader) readTime(col string) *time.Time {
	v, ok := r.row[col]
	if r.err != nil || !ok || v == nil {
		return nil
	}
	switch x := v.(type) {
	case string:
		t, err := store.ParseTimestamp(x)
		if err != nil {
			r.err = badValue(col, v, "timestamp")
			return nil
		}
		return &t
	case time.Time:
		u := x.UTC()
		return &u
	default:
		r.err = badValue(col, v, "timestamp")
		return nil
	}
}

func numberValue(col string, v any) (float64, error) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, badValue(col, v, "number")
		}
		return f, nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, badValue(col, v, "number")
	}
}

func wholeNumber(col string, v any) (int64, error) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := numberValue(col, v)
	if err != nil {
		return 0, err
	}
	i := int64(f)
	if float64(i) != f {
		return 0, badValue(col, v, "integer")
	}
	return i, nil
}

func uuidFromWire(col string, v any) (uuid.UUID, error) {
	s, isStr := v.(string)
	if !isStr {
		return uuid.Nil, badValue(col, v, "uuid")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, badValue(col, v, "uuid")
	}
	return u, nil
}

// putTime stores a nullable timestamp; nil stays an explicit null so a
// decoded row re-encodes with the same columns present.
func putTime(row store.Row, col string, t *time.Time) {
	if t == nil {
		row[col] = nil
		return
	}
	row[col] = store.FormatTimestamp(*t)
}

// putField stores an optional field, omitting it entirely when absent.
func putField[T any](row store.Row, col string, f domain.Field[T], wire func(T) any) {
	if !f.IsSet() {
		return
	}
	if f.IsNull() {
		row[col] = nil
		return
	}
	v, _ := f.Value()
	row[col] = wire(v)
}

func wireString(s string) any           { return s }
func wireFloat(f float64) any           { return f }
func wireInt(n int64) any               { return n }
func wireUUID(u uuid.UUID) any          { return u.String() }
func wireTime(t time.Time) any          { return store.FormatTimestamp(t) }
func wireStatus(s domain.JobStatus) any { return string(s) }
