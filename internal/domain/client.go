package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a company the agency recruits for. Its deactivation column is
// named "deactive" in the record store, unlike every other table.
type Client struct {
	ID          uuid.UUID
	Description Field[string]
	CreatedAt   *time.Time
	DeactiveAt  *time.Time
}

// Active reports whether the client has not been soft-deleted.
func (c Client) Active() bool { return c.DeactiveAt == nil }

// ClientPatch carries a partial update; only set fields are written.
type ClientPatch struct {
	Description Field[string]
	DeactiveAt  Field[time.Time]
}

// Empty reports whether no field is set.
func (p ClientPatch) Empty() bool {
	return !p.Description.IsSet() && !p.DeactiveAt.IsSet()
}
