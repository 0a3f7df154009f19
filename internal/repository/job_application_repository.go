package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// JobApplicationQuery filters application searches; all three ids match
// exactly in the store.
type JobApplicationQuery struct {
	ApplicantID      *uuid.UUID
	JobDescriptionID *uuid.UUID
	RecruiterID      *uuid.UUID
}

// JobApplicationRepository manages applicant-to-job applications and their
// recruiter assignment.
type JobApplicationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.JobApplication, error)
	List(ctx context.Context, includeInactive bool) ([]domain.JobApplication, error)
	Search(ctx context.Context, q JobApplicationQuery) ([]domain.JobApplication, error)
	// ListByApplicant returns every application of an applicant, active or
	// not: relationship lookups see the full history.
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.JobApplication, error)
	// ListByJob returns every application for a job description, active or
	// not.
	ListByJob(ctx context.Context, jobDescriptionID uuid.UUID) ([]domain.JobApplication, error)
	Create(ctx context.Context, a domain.JobApplication) (*domain.JobApplication, error)
	Update(ctx context.Context, id int64, p domain.JobApplicationPatch) (*domain.JobApplication, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Deactivate(ctx context.Context, id int64) (*domain.JobApplication, error)
	Reactivate(ctx context.Context, id int64) (*domain.JobApplication, error)
	AssignRecruiter(ctx context.Context, id int64, recruiterID uuid.UUID) (*domain.JobApplication, error)
	UnassignRecruiter(ctx context.Context, id int64) (*domain.JobApplication, error)
}

type jobApplicationRepository struct {
	base  entityRepo[domain.JobApplication]
	codec codec.JobApplicationCodec
}

// NewJobApplicationRepository constructs repository.
func NewJobApplicationRepository(st store.Store) JobApplicationRepository {
	c := codec.JobApplicationCodec{}
	return &jobApplicationRepository{
		base:  entityRepo[domain.JobApplication]{store: st, codec: c},
		codec: c,
	}
}

func (r *jobApplicationRepository) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return r.base.getByID(ctx, id)
}

func (r *jobApplicationRepository) List(ctx context.Context, includeInactive bool) ([]domain.JobApplication, error) {
	return r.base.list(ctx, includeInactive)
}

func (r *jobApplicationRepository) Search(ctx context.Context, q JobApplicationQuery) ([]domain.JobApplication, error) {
	set := filter.New[domain.JobApplication]().ActiveOnly(r.codec.ActivityColumn())
	if q.ApplicantID != nil {
		set.Exact("applicant_id", q.ApplicantID.String())
	}
	if q.JobDescriptionID != nil {
		set.Exact("job_description_id", q.JobDescriptionID.String())
	}
	if q.RecruiterID != nil {
		set.Exact("recruiter_id", q.RecruiterID.String())
	}
	return r.base.search(ctx, set)
}

func (r *jobApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]domain.JobApplication, error) {
	set := filter.New[domain.JobApplication]().Exact("applicant_id", applicantID.String())
	return r.base.search(ctx, set)
}

func (r *jobApplicationRepository) ListByJob(ctx context.Context, jobDescriptionID uuid.UUID) ([]domain.JobApplication, error) {
	set := filter.New[domain.JobApplication]().Exact("job_description_id", jobDescriptionID.String())
	return r.base.search(ctx, set)
}

func (r *jobApplicationRepository) Create(ctx context.Context, a domain.JobApplication) (*domain.JobApplication, error) {
	return r.base.create(ctx, a)
}

func (r *jobApplicationRepository) Update(ctx context.Context, id int64, p domain.JobApplicationPatch) (*domain.JobApplication, error) {
	return r.base.update(ctx, id, r.codec.PatchRow(p))
}

func (r *jobApplicationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.base.delete(ctx, id)
}

func (r *jobApplicationRepository) Deactivate(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return r.base.deactivate(ctx, id)
}

func (r *jobApplicationRepository) Reactivate(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return r.base.reactivate(ctx, id)
}

func (r *jobApplicationRepository) AssignRecruiter(ctx context.Context, id int64, recruiterID uuid.UUID) (*domain.JobApplication, error) {
	return r.base.update(ctx, id, store.Row{"recruiter_id": recruiterID.String()})
}

func (r *jobApplicationRepository) UnassignRecruiter(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return r.base.update(ctx, id, store.Row{"recruiter_id": nil})
}
