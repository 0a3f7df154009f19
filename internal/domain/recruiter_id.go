package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

type recruiterIDKind int

const (
	recruiterIDNone recruiterIDKind = iota
	recruiterIDInt
	recruiterIDUUID
	recruiterIDRaw
)

// RecruiterID is the polymorphic recruiter identifier. Deployed data holds
// both integer and uuid ids in the same column, so the incoming
// representation is preserved rather than coerced.
type RecruiterID struct {
	kind recruiterIDKind
	n    int64
	u    uuid.UUID
	raw  string
}

// RecruiterIDFromInt builds an integer recruiter id.
func RecruiterIDFromInt(n int64) RecruiterID {
	return RecruiterID{kind: recruiterIDInt, n: n}
}

// RecruiterIDFromUUID builds a uuid recruiter id.
func RecruiterIDFromUUID(u uuid.UUID) RecruiterID {
	return RecruiterID{kind: recruiterIDUUID, u: u}
}

// ParseRecruiterID resolves a wire value: uuids first, then integers, and
// any other string is kept as-is so no information is lost.
func ParseRecruiterID(v any) RecruiterID {
	switch x := v.(type) {
	case nil:
		return RecruiterID{}
	case string:
		return ParseRecruiterIDString(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return RecruiterIDFromInt(i)
		}
		return RecruiterID{kind: recruiterIDRaw, raw: x.String()}
	case float64:
		return RecruiterIDFromInt(int64(x))
	case int:
		return RecruiterIDFromInt(int64(x))
	case int64:
		return RecruiterIDFromInt(x)
	case uuid.UUID:
		return RecruiterIDFromUUID(x)
	default:
		return RecruiterID{}
	}
}

// ParseRecruiterIDString resolves a textual id: uuid, then integer, then raw.
func ParseRecruiterIDString(s string) RecruiterID {
	if s == "" {
		return RecruiterID{}
	}
	if u, err := uuid.Parse(s); err == nil {
		return RecruiterIDFromUUID(u)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return RecruiterIDFromInt(n)
	}
	return RecruiterID{kind: recruiterIDRaw, raw: s}
}

// IsZero reports whether no id is held.
func (id RecruiterID) IsZero() bool { return id.kind == recruiterIDNone }

// Int returns the integer form when held.
func (id RecruiterID) Int() (int64, bool) {
	return id.n, id.kind == recruiterIDInt
}

// UUID returns the uuid form when held.
func (id RecruiterID) UUID() (uuid.UUID, bool) {
	return id.u, id.kind == recruiterIDUUID
}

// String renders the id in its original representation.
func (id RecruiterID) String() string {
	switch id.kind {
	case recruiterIDInt:
		return strconv.FormatInt(id.n, 10)
	case recruiterIDUUID:
		return id.u.String()
	case recruiterIDRaw:
		return id.raw
	default:
		return ""
	}
}

// MarshalJSON renders the wire form.
func (id RecruiterID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.WireValue())
}

// UnmarshalJSON accepts a number, a string, or null.
func (id *RecruiterID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*id = ParseRecruiterID(v)
	return nil
}

// WireValue returns the value sent to the record store: an integer for
// integer ids, a string otherwise.
func (id RecruiterID) WireValue() any {
	switch id.kind {
	case recruiterIDInt:
		return id.n
	case recruiterIDUUID:
		return id.u.String()
	case recruiterIDRaw:
		return id.raw
	default:
		return nil
	}
}
