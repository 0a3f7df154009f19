package store

import (
	"context"
	"fmt"
	"time"
)

// Row is a single record as it travels on the wire: column name to primitive
// value (string, number, bool or nil). Timestamps are ISO-8601 strings.
type Row map[string]any

// Filters maps column names to required values for equality matching.
// A nil value matches rows where the column is NULL.
type Filters map[string]any

// Store is the narrow contract every driver implements. All operations are
// single-attempt: failures surface as *Error without retries.
type Store interface {
	// Query returns all rows of table matching every filter.
	Query(ctx context.Context, table string, filters Filters) ([]Row, error)
	// Insert adds a row and returns the stored representation, including
	// store-assigned columns such as id and created_at.
	Insert(ctx context.Context, table string, row Row) ([]Row, error)
	// Update applies patch to the row whose id matches and returns the
	// updated rows. A missing id yields zero rows, not an error. An empty
	// patch behaves as a fetch of the current row.
	Update(ctx context.Context, table string, id any, patch Row) ([]Row, error)
	// Delete permanently removes the row whose id matches and returns the
	// removed rows.
	Delete(ctx context.Context, table string, id any) ([]Row, error)
}

// Pinger is implemented by drivers that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Error wraps a driver failure with the operation and table it occurred on.
type Error struct {
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op, table string, err error) *Error {
	return &Error{Op: op, Table: table, Err: err}
}

// wireTimestampLayouts are accepted when parsing timestamps off the wire.
// The store emits RFC3339; deployed data may carry naive ISO-8601 values.
var wireTimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// FormatTimestamp renders t in the wire representation (UTC, RFC3339).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimestamp reads a wire timestamp, accepting RFC3339 and naive
// ISO-8601 forms. Naive values are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range wireTimestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", s, lastErr)
}
