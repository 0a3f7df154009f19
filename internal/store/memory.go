package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process Store used by tests and local development. Rows
// are held per table behind an RWMutex; returned rows are always copies.
type Memory struct {
	mu      sync.RWMutex
	tables  map[string][]Row
	serials map[string]int64
}

// NewMemory builds an empty in-memory store. Tables listed in serialTables
// receive sequential integer ids on insert; all other tables receive uuids.
func NewMemory(serialTables ...string) *Memory {
	serials := make(map[string]int64, len(serialTables))
	for _, t := range serialTables {
		serials[t] = 0
	}
	return &Memory{
		tables:  make(map[string][]Row),
		serials: serials,
	}
}

// Query returns copies of all rows matching every filter.
func (m *Memory) Query(_ context.Context, table string, filters Filters) ([]Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Row
	for _, row := range m.tables[table] {
		if rowMatches(row, filters) {
			out = append(out, copyRow(row))
		}
	}
	return out, nil
}

// Insert stores a copy of row, assigning id and created_at when absent.
func (m *Memory) Insert(_ context.Context, table string, row Row) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := copyRow(row)
	if _, ok := stored["id"]; !ok {
		if m.isSerial(table) {
			m.serials[table]++
			stored["id"] = m.serials[table]
		} else {
			stored["id"] = uuid.New().String()
		}
	}
	if _, ok := stored["created_at"]; !ok {
		stored["created_at"] = FormatTimestamp(time.Now())
	}
	m.tables[table] = append(m.tables[table], stored)
	return []Row{copyRow(stored)}, nil
}

// Update patches the row whose id matches and returns it. A missing id
// yields zero rows; an empty patch returns the current row untouched.
func (m *Memory) Update(_ context.Context, table string, id any, patch Row) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, row := range m.tables[table] {
		if !valuesEqual(row["id"], id) {
			continue
		}
		updated := copyRow(row)
		for col, v := range patch {
			updated[col] = v
		}
		m.tables[table][i] = updated
		return []Row{copyRow(updated)}, nil
	}
	return nil, nil
}

// Delete removes the row whose id matches and returns it.
func (m *Memory) Delete(_ context.Context, table string, id any) ([]Row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	for i, row := range rows {
		if valuesEqual(row["id"], id) {
			m.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return []Row{copyRow(row)}, nil
		}
	}
	return nil, nil
}

// Ping always succeeds.
func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) isSerial(table string) bool {
	_, ok := m.serials[table]
	return ok
}

func rowMatches(row Row, filters Filters) bool {
	for col, want := range filters {
		if !valuesEqual(row[col], want) {
			return false
		}
	}
	return true
}

func copyRow(row Row) Row {
	out := make(Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// valuesEqual compares wire values loosely: numbers compare by value across
// int/float/json.Number/string forms, nil matches nil or a missing column.
func valuesEqual(a, b any) bool {
	ac, aNil := canonValue(a)
	bc, bNil := canonValue(b)
	if aNil || bNil {
		return aNil == bNil
	}
	return ac == bc
}

func canonValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, false
	case bool:
		return strconv.FormatBool(x), false
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), false
		}
		return x.String(), false
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), false
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 64), false
	case int:
		return strconv.FormatInt(int64(x), 10), false
	case int32:
		return strconv.FormatInt(int64(x), 10), false
	case int64:
		return strconv.FormatInt(x, 10), false
	default:
		return fmt.Sprintf("%v", x), false
	}
}
