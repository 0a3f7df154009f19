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

// JobDescriptionService coordinates job description workflows, including
// the close/reopen lifecycle that keeps status and deactivation in step.
type JobDescriptionService struct {
	repo       repository.JobDescriptionRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	table      string
}

// JobDescriptionDependencies bundles collaborators for the service.
type JobDescriptionDependencies struct {
	Repo       repository.JobDescriptionRepository
	Cache      *cache.Cache
	Dispatcher events.Dispatcher
}

// NewJobDescriptionService constructs the service.
func NewJobDescriptionService(deps JobDescriptionDependencies) *JobDescriptionService {
	return &JobDescriptionService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		table:      codec.JobDescriptionCodec{}.Table(),
	}
}

// Get returns one job description, or nil when the id is unknown.
func (s *JobDescriptionService) Get(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	return cachedGet(ctx, s.cache, cache.Key(s.table, id.String()), func(ctx context.Context) (*domain.JobDescription, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// List returns job descriptions, active ones only unless includeInactive
// is set.
func (s *JobDescriptionService) List(ctx context.Context, includeInactive bool) ([]domain.JobDescription, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search returns active job descriptions matching the query.
func (s *JobDescriptionService) Search(ctx context.Context, q repository.JobDescriptionQuery) ([]domain.JobDescription, error) {
	return s.repo.Search(ctx, q)
}

// Create stores a new job description.
func (s *JobDescriptionService) Create(ctx context.Context, j domain.JobDescription) (*domain.JobDescription, error) {
	created, err := s.repo.Create(ctx, j)
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
// Status values are stored as given; OPEN, PAUSED and CLOSED are
// conventions, not an enforced enum.
func (s *JobDescriptionService) Update(ctx context.Context, id uuid.UUID, patch domain.JobDescriptionPatch) (*domain.JobDescription, error) {
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

// Delete permanently removes a job description.
func (s *JobDescriptionService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
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

// Deactivate soft-deletes a job description without touching its status.
func (s *JobDescriptionService) Deactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
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

// Reactivate restores a soft-deleted job description without touching its
// status.
func (s *JobDescriptionService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
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

// Close marks the job CLOSED and deactivates it in one write.
func (s *JobDescriptionService) Close(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	closed, err := s.repo.Close(ctx, id)
	if err != nil || closed == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventJobStatusChanged,
		Table:    s.table,
		EntityID: id.String(),
		Payload: events.JobStatusChangedPayload{
			OldStatus: existing.Status,
			NewStatus: closed.Status,
		},
	})
	return closed, nil
}

// Reopen marks the job OPEN and reactivates it in one write.
func (s *JobDescriptionService) Reopen(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	reopened, err := s.repo.Reopen(ctx, id)
	if err != nil || reopened == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventJobStatusChanged,
		Table:    s.table,
		EntityID: id.String(),
		Payload: events.JobStatusChangedPayload{
			OldStatus: existing.Status,
			NewStatus: reopened.Status,
		},
	})
	return reopened, nil
}

// ChangeStatus updates the status column alone. The deactivation timestamp
// is left as-is, so a job can read CLOSED while still listed as active.
func (s *JobDescriptionService) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus) (*domain.JobDescription, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	updated, err := s.repo.ChangeStatus(ctx, id, status)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.Key(s.table, id.String()))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventJobStatusChanged,
		Table:    s.table,
		EntityID: id.String(),
		Payload: events.JobStatusChangedPayload{
			OldStatus: existing.Status,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}
