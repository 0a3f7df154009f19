package store

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"go.uber.org/zap"

	"github.com/alegonzalezz/ATS-backend/internal/config"
)

// Supabase is a Store speaking PostgREST against a Supabase project. This is
// the production driver; the record store owns ids, created_at defaults and
// the schema itself.
type Supabase struct {
	client *postgrest.Client
}

// NewSupabase builds a PostgREST client for the configured project.
func NewSupabase(cfg config.SupabaseConfig, logger *zap.Logger) (*Supabase, error) {
	rest := strings.TrimRight(cfg.URL, "/") + "/rest/v1"
	schema := cfg.Schema
	if schema == "" {
		schema = "public"
	}

	client := postgrest.NewClient(rest, schema, map[string]string{
		"apikey":        cfg.Key,
		"Authorization": "Bearer " + cfg.Key,
	})
	if client.ClientError != nil {
		return nil, client.ClientError
	}

	logger.Info("supabase record store configured", zap.String("url", rest), zap.String("schema", schema))
	return &Supabase{client: client}, nil
}

// Query selects all rows matching the equality filters.
func (s *Supabase) Query(ctx context.Context, table string, filters Filters) ([]Row, error) {
	fb := s.client.From(table).Select("*", "", false)
	for _, col := range sortedKeys(filters) {
		if val, isNil := canonValue(filters[col]); isNil {
			fb = fb.Is(col, "null")
		} else {
			fb = fb.Eq(col, val)
		}
	}
	data, _, err := fb.Execute()
	if err != nil {
		return nil, newError("query", table, err)
	}
	return decodeRows("query", table, data)
}

// Insert adds a row and returns the stored representation.
func (s *Supabase) Insert(ctx context.Context, table string, row Row) ([]Row, error) {
	data, _, err := s.client.From(table).Insert(row, false, "", "representation", "").Execute()
	if err != nil {
		return nil, newError("insert", table, err)
	}
	return decodeRows("insert", table, data)
}

// Update patches the row whose id matches and returns it.
func (s *Supabase) Update(ctx context.Context, table string, id any, patch Row) ([]Row, error) {
	if len(patch) == 0 {
		return s.Query(ctx, table, Filters{"id": id})
	}
	idStr, _ := canonValue(id)
	data, _, err := s.client.From(table).Update(patch, "representation", "").Eq("id", idStr).Execute()
	if err != nil {
		return nil, newError("update", table, err)
	}
	return decodeRows("update", table, data)
}

// Delete permanently removes the row whose id matches and returns it.
func (s *Supabase) Delete(ctx context.Context, table string, id any) ([]Row, error) {
	idStr, _ := canonValue(id)
	data, _, err := s.client.From(table).Delete("representation", "").Eq("id", idStr).Execute()
	if err != nil {
		return nil, newError("delete", table, err)
	}
	return decodeRows("delete", table, data)
}

func decodeRows(op, table string, data []byte) ([]Row, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows []Row
	if err := dec.Decode(&rows); err != nil {
		return nil, newError(op, table, err)
	}
	return rows, nil
}
