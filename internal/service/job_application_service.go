package service

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
)

// JobApplicationService coordinates application workflows, including
// recruiter assignment.
type JobApplicationService struct {
	repo       repository.JobApplicationRepository
	cache      *cache.Cache
	dispatcher events.Dispatcher
	table      string
}

// JobApplicationDependencies bundles collaborators for the service.
type JobApplicationDependencies struct {
	Repo       repository.JobApplicationRepository
	Cache      *cache.Cache
	Dispatcher events.Dispatcher
}

// NewJobApplicationService constructs the service.
func NewJobApplicationService(deps JobApplicationDependencies) *JobApplicationService {
	return &JobApplicationService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		table:      codec.JobApplicationCodec{}.Table(),
	}
}

func applicationKey(table string, id int64) string {
	return cache.Key(table, strconv.FormatInt(id, 10))
}

// Get returns one application, or nil when the id is unknown.
func (s *JobApplicationService) Get(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return cachedGet(ctx, s.cache, applicationKey(s.table, id), func(ctx context.Context) (*domain.JobApplication, error) {
		return s.repo.GetByID(ctx, id)
	})
}

// List returns applications, active ones only unless includeInactive is set.
func (s *JobApplicationService) List(ctx context.Context, includeInactive bool) ([]domain.JobApplication, error) {
	return s.repo.List(ctx, includeInactive)
}

// Search returns active applications matching the query.
func (s *JobApplicationService) Search(ctx context.Context, q repository.JobApplicationQuery) ([]domain.JobApplication, error) {
	return s.repo.Search(ctx, q)
}

// ListByApplicant returns every application an applicant has filed,
// regardless of activity state.
func (s *JobApplicationService) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.JobApplication, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

// ListByJob returns every application filed against a job description,
// regardless of activity state.
func (s *JobApplicationService) ListByJob(ctx context.Context, jobDescriptionID uuid.UUID) ([]domain.JobApplication, error) {
	return s.repo.ListByJob(ctx, jobDescriptionID)
}

// Create stores a new application.
func (s *JobApplicationService) Create(ctx context.Context, a domain.JobApplication) (*domain.JobApplication, error) {
	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityCreated,
		Table:    s.table,
		EntityID: strconv.FormatInt(created.ID, 10),
	})
	return created, nil
}

// Update applies a partial update, or returns nil when the id is unknown.
func (s *JobApplicationService) Update(ctx context.Context, id int64, patch domain.JobApplicationPatch) (*domain.JobApplication, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityUpdated,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
	})
	return updated, nil
}

// Delete permanently removes an application.
func (s *JobApplicationService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityDeleted,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
	})
	return true, nil
}

// Deactivate soft-deletes an application.
func (s *JobApplicationService) Deactivate(ctx context.Context, id int64) (*domain.JobApplication, error) {
	updated, err := s.repo.Deactivate(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityDeactivated,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
	})
	return updated, nil
}

// Reactivate restores a soft-deleted application.
func (s *JobApplicationService) Reactivate(ctx context.Context, id int64) (*domain.JobApplication, error) {
	updated, err := s.repo.Reactivate(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventEntityReactivated,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
	})
	return updated, nil
}

// AssignRecruiter links a recruiter to an application.
func (s *JobApplicationService) AssignRecruiter(ctx context.Context, id int64, recruiterID uuid.UUID) (*domain.JobApplication, error) {
	updated, err := s.repo.AssignRecruiter(ctx, id, recruiterID)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventRecruiterAssigned,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
		Payload: events.RecruiterAssignmentPayload{
			RecruiterID: recruiterID.String(),
		},
	})
	return updated, nil
}

// UnassignRecruiter clears the recruiter link on an application.
func (s *JobApplicationService) UnassignRecruiter(ctx context.Context, id int64) (*domain.JobApplication, error) {
	updated, err := s.repo.UnassignRecruiter(ctx, id)
	if err != nil || updated == nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, applicationKey(s.table, id))
	publish(ctx, s.dispatcher, events.Event{
		Type:     events.EventRecruiterUnassigned,
		Table:    s.table,
		EntityID: strconv.FormatInt(id, 10),
	})
	return updated, nil
}
