package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
)

// ClientService coordinates client workflows.
type ClientService struct {
	repo       repository.ClientRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	table      string
}

// ClientDependencies bundles collaborators for the client service.
type ClientDependencies struct {
	Repo       repository.ClientRepository
	Cache      *cache.Cache
	Dispatcher events.Dispatcher
}

// NewClientService constructs the service.
func NewClientService(deps ClientDependencies) *ClientService {
	return &ClientService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		table:      codec.ClientCodec{}.Table(),
	}
}

// Get returns one client, or nil when the id is unknown.
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return cachedGet(ctx, s.cache, cache.Key(s.table, id.String()), func(ctx context.Context) (*domain.Client, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// List returns clients, active ones only unless includeInactive is set.
func (s *ClientService) List(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search returns active clients matching the query.
func (s *ClientService) Search(ctx context.Context, q repository.ClientQuery) ([]domain.Client, error) {
	return s.repo.Search(ctx, q)
}

// Create stores a new client.
func (s *ClientService) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityCreated,
		Table:    s.table,
		EntityID: created.ID.String(),
	})
	return created, nil
}

// Update applies a partial update, or returns nil when the id is unknown.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (*domain.Client, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityUpdated,
		Table:    s.table,
		EntityID: id.String(),
	})
	return updated, nil
}

// Delete permanently removes a client.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityDeleted,
		Table:    s.table,
		EntityID: id.String(),
	})
	return true, nil
}

// Deactivate soft-deletes a client.
func (s *ClientService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	updated, err := s.repo.Deactivate(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityDeactivated,
		Table:    s.table,
		EntityID: id.String(),
	})
	return updated, nil
}

// Reactivate restores a soft-deleted client.
func (s *ClientService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	updated, err := s.repo.Reactivate(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityReactivated,
		Table:    s.table,
		EntityID: id.String(),
	})
	return updated, nil
}
