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

// ApplicantService coordinates applicant workflows.
type ApplicantService struct {
	repo       repository.ApplicantRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	table      string
}

// ApplicantDependencies bundles collaborators for the applicant service.
type ApplicantDependencies struct {
	Repo       repository.ApplicantRepository
	Cache      *cache.Cache
	Dispatcher events.Dispatcher
}

// NewApplicantService constructs the service.
func NewApplicantService(deps ApplicantDependencies) *ApplicantService {
	return &ApplicantService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		table:      codec.ApplicantCodec{}.Table(),
	}
}

// Get returns one applicant, or nil when the id is unknown.
func (s *ApplicantService) Get(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	return cachedGet(ctx, s.cache, cache.Key(s.table, id.String()), func(ctx context.Context) (*domain.Applicant, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// List returns applicants, active ones only unless includeInactive is set.
func (s *ApplicantService) List(ctx context.Context, includeInactive bool) ([]domain.Applicant, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search returns active applicants matching the query.
func (s *ApplicantService) Search(ctx context.Context, q repository.ApplicantQuery) ([]domain.Applicant, error) {
	return s.repo.Search(ctx, q)
}

// Create stores a new applicant.
func (s *ApplicantService) Create(ctx context.Context, a domain.Applicant) (*domain.Applicant, error) {
	created, err := s.repo.Create(ctx, a)
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
func (s *ApplicantService) Update(ctx context.Context, id uuid.UUID, patch domain.ApplicantPatch) (*domain.Applicant, error) {
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

// Delete permanently removes an applicant.
func (s *ApplicantService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
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

// Deactivate soft-deletes an applicant, refreshing the timestamp when it
// is already inactive.
func (s *ApplicantService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
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

// Reactivate restores a soft-deleted applicant.
func (s *ApplicantService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
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
