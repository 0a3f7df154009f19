// Package lifecycle implements the soft-delete activity model shared by all
// entity tables: a nullable deactivation timestamp whose presence marks a
// record inactive.
package lifecycle

import (
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// State is the derived activity of a record.
type State string

const (
	StateActive   State = "ACTIVE"
	StateInactive State = "INACTIVE"
)

// StateOf derives activity from the deactivation timestamp.
func StateOf(deactivatedAt *time.Time) State {
	if deactivatedAt == nil {
		return StateActive
	}
	return StateInactive
}

// DeactivatePatch stamps the deactivation column with now. The timestamp is
// written unconditionally: deactivating an already-inactive record refreshes
// it, which callers rely on staying observable.
func DeactivatePatch(column string, now time.Time) store.Row {
	return store.Row{column: store.FormatTimestamp(now)}
}

// ReactivatePatch clears the deactivation column. Reactivating an active
// record is a no-op.
func ReactivatePatch(column string) store.Row {
	return store.Row{column: nil}
}
