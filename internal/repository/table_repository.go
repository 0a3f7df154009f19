package repository

import (
	"context"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/store"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// TableRepository exposes raw record access for any table in the store.
// Rows pass through as maps with only runtime-checked conversions; tables
// with a registered entity codec get their rows validated on insert.
type TableRepository interface {
	Query(ctx context.Context, table string, filters store.Filters) ([]store.Row, error)
	Get(ctx context.Context, table string, id any) (store.Row, error)
	Insert(ctx context.Context, table string, row store.Row) (store.Row, error)
	Update(ctx context.Context, table string, id any, patch store.Row) (store.Row, error)
	Delete(ctx context.Context, table string, id any) (bool, error)
}

type tableRepository struct {
	store    store.Store
	registry *codec.Registry
}

// NewTableRepository constructs repository.
func NewTableRepository(st store.Store, registry *codec.Registry) TableRepository {
	return &tableRepository{store: st, registry: registry}
}

func (r *tableRepository) Query(ctx context.Context, table string, filters store.Filters) ([]store.Row, error) {
	rows, err := r.store.Query(ctx, table, filters)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	return rows, nil
}

func (r *tableRepository) Get(ctx context.Context, table string, id any) (store.Row, error) {
	rows, err := r.store.Query(ctx, table, store.Filters{"id": id})
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *tableRepository) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	if err := r.registry.ValidateRow(table, row); err != nil {
		return nil, err
	}
	rows, err := r.store.Insert(ctx, table, row)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, util.NewCreationFailed(table, nil)
	}
	return rows[0], nil
}

func (r *tableRepository) Update(ctx context.Context, table string, id any, patch store.Row) (store.Row, error) {
	rows, err := r.store.Update(ctx, table, id, patch)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *tableRepository) Delete(ctx context.Context, table string, id any) (bool, error) {
	rows, err := r.store.Delete(ctx, table, id)
	if err != nil {
		return false, util.NewStoreError(err)
	}
	return len(rows) > 0, nil
}
