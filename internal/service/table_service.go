package service

import (
	"context"
	"fmt"

	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// TableService exposes administrative raw-record access to any table in
// the store. Rows pass through unmapped; writes still invalidate the
// cache and emit events so the typed surfaces observe admin edits.
type TableService struct {
	repo       repository.TableRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
}

// NewTableService constructs the service.
func NewTableService(repo repository.TableRepository, c *cache.Cache, dispatcher events.Dispatcher) *TableService {
	return &TableService{repo: repo, cache: c, dispatcher: dispatcher}
}

// Query returns raw rows matching exact column filters.
func (s *TableService) Query(ctx context.Context, table string, filters store.Filters) ([]store.Row, error) {
	return s.repo.Query(ctx, table, filters)
}

// Get returns one raw row, or nil when the id is unknown.
func (s *TableService) Get(ctx context.Context, table string, id any) (store.Row, error) {
	return s.repo.Get(ctx, table, id)
}

// Insert stores a raw row. Rows bound for tables with a registered codec
// are validated first.
func (s *TableService) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	inserted, err := s.repo.Insert(ctx, table, row)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityCreated,
		Table:    table,
		EntityID: fmt.Sprint(inserted["id"]),
	})
	return inserted, nil
}

// Update patches a raw row, or returns nil when the id is unknown.
func (s *TableService) Update(ctx context.Context, table string, id any, patch store.Row) (store.Row, error) {
	updated, err := s.repo.Update(ctx, table, id, patch)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(table, fmt.Sprint(id)))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityUpdated,
		Table:    table,
		EntityID: fmt.Sprint(id),
	})
	return updated, nil
}

// Delete permanently removes a raw row.
func (s *TableService) Delete(ctx context.Context, table string, id any) (bool, error) {
	deleted, err := s.repo.Delete(ctx, table, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.cache.Invalidate(ctx, cache.Key(table, fmt.Sprint(id)))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityDeleted,
		Table:    table,
		EntityID: fmt.Sprint(id),
	})
	return true, nil
}
