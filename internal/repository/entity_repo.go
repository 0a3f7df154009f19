package repository

import (
	"context"
	"time"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/lifecycle"
	"github.com/alegonzalezz/ATS-backend/internal/store"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// entityRepo is the generic core the entity repositories build on. It holds
// no state beyond the store handle and the codec, so instances are safe for
// concurrent use.
type entityRepo[E any] struct {
	store store.Store
	codec codec.Codec[E]
}

func (t entityRepo[E]) getByID(ctx context.Context, id any) (*E, error) {
	rows, err := t.store.Query(ctx, t.codec.Table(), store.Filters{"id": id})
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e, err := t.codec.FromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (t entityRepo[E]) list(ctx context.Context, includeInactive bool) ([]E, error) {
	filters := store.Filters{}
	if !includeInactive {
		filters[t.codec.ActivityColumn()] = nil
	}
	rows, err := t.store.Query(ctx, t.codec.Table(), filters)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	return t.decode(rows)
}

func (t entityRepo[E]) search(ctx context.Context, set *filter.Set[E]) ([]E, error) {
	rows, err := t.store.Query(ctx, t.codec.Table(), set.StoreFilters())
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	items, err := t.decode(rows)
	if err != nil {
		return nil, err
	}
	return set.Narrow(items), nil
}

func (t entityRepo[E]) create(ctx context.Context, e E) (*E, error) {
	row, err := t.codec.ToRow(e)
	if err != nil {
		return nil, err
	}
	rows, err := t.store.Insert(ctx, t.codec.Table(), row)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, util.NewCreationFailed(t.codec.Table(), nil)
	}
	created, err := t.codec.FromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (t entityRepo[E]) update(ctx context.Context, id any, patch store.Row) (*E, error) {
	rows, err := t.store.Update(ctx, t.codec.Table(), id, patch)
	if err != nil {
		return nil, util.NewStoreError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e, err := t.codec.FromRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (t entityRepo[E]) delete(ctx context.Context, id any) (bool, error) {
	rows, err := t.store.Delete(ctx, t.codec.Table(), id)
	if err != nil {
		return false, util.NewStoreError(err)
	}
	return len(rows) > 0, nil
}

func (t entityRepo[E]) deactivate(ctx context.Context, id any) (*E, error) {
	return t.update(ctx, id, lifecycle.DeactivatePatch(t.codec.ActivityColumn(), time.Now()))
}

func (t entityRepo[E]) reactivate(ctx context.Context, id any) (*E, error) {
	return t.update(ctx, id, lifecycle.ReactivatePatch(t.codec.ActivityColumn()))
}

func (t entityRepo[E]) decode(rows []store.Row) ([]E, error) {
	out := make([]E, 0, len(rows))
	for _, row := range rows {
		e, err := t.codec.FromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
