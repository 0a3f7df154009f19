package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/alegonzalezz/ATS-backend/internal/config"
)

// Postgres is a Store speaking SQL directly against the record store's
// database. It assumes the schema already exists; tables are addressed by
// name with sanitized identifiers.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool from the provided configuration.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{pool: pool}, nil
}

// Query selects all rows matching the equality filters.
func (p *Postgres) Query(ctx context.Context, table string, filters Filters) ([]Row, error) {
	var sb strings.Builder
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(pgx.Identifier{table}.Sanitize())

	args := make([]any, 0, len(filters))
	if len(filters) > 0 {
		sb.WriteString(" WHERE ")
		for i, col := range sortedKeys(filters) {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			v := filters[col]
			if v == nil {
				sb.WriteString(pgx.Identifier{col}.Sanitize())
				sb.WriteString(" IS NULL")
				continue
			}
			args = append(args, paramValue(v))
			fmt.Fprintf(&sb, "%s = $%d", pgx.Identifier{col}.Sanitize(), len(args))
		}
	}

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, newError("query", table, err)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, newError("query", table, err)
	}
	return out, nil
}

// Insert adds a row and returns the stored representation.
func (p *Postgres) Insert(ctx context.Context, table string, row Row) ([]Row, error) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(pgx.Identifier{table}.Sanitize())

	args := make([]any, 0, len(row))
	if len(row) == 0 {
		sb.WriteString(" DEFAULT VALUES")
	} else {
		cols := sortedKeys(Filters(row))
		sb.WriteString(" (")
		for i, col := range cols {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(pgx.Identifier{col}.Sanitize())
		}
		sb.WriteString(") VALUES (")
		for i, col := range cols {
			if i > 0 {
				sb.WriteString(", ")
			}
			args = append(args, paramValue(row[col]))
			fmt.Fprintf(&sb, "$%d", len(args))
		}
		sb.WriteString(")")
	}
	sb.WriteString(" RETURNING *")

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, newError("insert", table, err)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, newError("insert", table, err)
	}
	return out, nil
}

// Update patches the row whose id matches and returns it.
func (p *Postgres) Update(ctx context.Context, table string, id any, patch Row) ([]Row, error) {
	if len(patch) == 0 {
		return p.Query(ctx, table, Filters{"id": id})
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(pgx.Identifier{table}.Sanitize())
	sb.WriteString(" SET ")

	args := make([]any, 0, len(patch)+1)
	for i, col := range sortedKeys(Filters(patch)) {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, paramValue(patch[col]))
		fmt.Fprintf(&sb, "%s = $%d", pgx.Identifier{col}.Sanitize(), len(args))
	}
	args = append(args, paramValue(id))
	fmt.Fprintf(&sb, " WHERE id = $%d RETURNING *", len(args))

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, newError("update", table, err)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, newError("update", table, err)
	}
	return out, nil
}

// Delete permanently removes the row whose id matches and returns it.
func (p *Postgres) Delete(ctx context.Context, table string, id any) ([]Row, error) {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING *", pgx.Identifier{table}.Sanitize())
	rows, err := p.pool.Query(ctx, sql, paramValue(id))
	if err != nil {
		return nil, newError("delete", table, err)
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, newError("delete", table, err)
	}
	return out, nil
}

// Ping verifies database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close releases pool resources.
func (p *Postgres) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}

func collectRows(rows pgx.Rows) ([]Row, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var out []Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// normalizeValue maps driver-native values onto wire primitives.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return FormatTimestamp(x)
	case [16]byte:
		return uuid.UUID(x).String()
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	default:
		return v
	}
}

// paramValue maps wire values onto types pgx encodes cleanly.
func paramValue(v any) any {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	}
	return v
}

func sortedKeys(m Filters) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
