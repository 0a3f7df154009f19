package service

import (
	"context"

	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
)

// RecruiterService coordinates recruiter workflows. Recruiter ids keep
// their stored representation, so callers address records through
// domain.RecruiterID rather than a concrete id type.
type RecruiterService struct {
	repo       repository.RecruiterRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	table      string
}

// RecruiterDependencies bundles collaborators for the recruiter service.
type RecruiterDependencies struct {
	Repo       repository.RecruiterRepository
	Cache      *cache.Cache
	Dispatcher events.Dispatcher
}

// NewRecruiterService constructs the service.
func NewRecruiterService(deps RecruiterDependencies) *RecruiterService {
	return &RecruiterService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		table:      codec.RecruiterCodec{}.Table(),
	}
}

// Get returns one recruiter, or nil when the id is unknown.
func (s *RecruiterService) Get(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
	return cachedGet(ctx, s.cache, cache.Key(s.table, id.String()), func(ctx context.Context) (*domain.Recruiter, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// List returns recruiters, active ones only unless includeInactive is set.
func (s *RecruiterService) List(ctx context.Context, includeInactive bool) ([]domain.Recruiter, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search returns active recruiters matching the query.
func (s *RecruiterService) Search(ctx context.Context, q repository.RecruiterQuery) ([]domain.Recruiter, error) {
	return s.repo.Search(ctx, q)
}

// Create stores a new recruiter.
func (s *RecruiterService) Create(ctx context.Context, r domain.Recruiter) (*domain.Recruiter, error) {
	created, err := s.repo.Create(ctx, r)
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
func (s *RecruiterService) Update(ctx context.Context, id domain.RecruiterID, patch domain.RecruiterPatch) (*domain.Recruiter, error) {
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

// Delete permanently removes a recruiter.
func (s *RecruiterService) Delete(ctx context.Context, id domain.RecruiterID) (bool, error) {
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

// Deactivate soft-deletes a recruiter.
func (s *RecruiterService) Deactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
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

// Reactivate restores a soft-deleted recruiter.
func (s *RecruiterService) Reactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
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
