package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/lifecycle"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// JobDescriptionQuery filters job description searches. Status, client and
// recruiter match exactly in the store; both salary bounds compare against
// the position's minimum salary in process.
type JobDescriptionQuery struct {
	Status       *string
	ClientID     *uuid.UUID
	RecruiterID  *int64
	MinSalaryMin *float64
	MinSalaryMax *float64
}

// JobDescriptionRepository manages job description records and their status
// lifecycle.
type JobDescriptionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	List(ctx context.Context, includeInactive bool) ([]domain.JobDescription, error)
	Search(ctx context.Context, q JobDescriptionQuery) ([]domain.JobDescription, error)
	Create(ctx context.Context, j domain.JobDescription) (*domain.JobDescription, error)
	Update(ctx context.Context, id uuid.UUID, p domain.JobDescriptionPatch) (*domain.JobDescription, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	// Close marks the position CLOSED and deactivates it in one write.
	Close(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	// Reopen marks the position OPEN and reactivates it in one write.
	Reopen(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	// ChangeStatus writes the status alone. It can leave status and the
	// deactivation timestamp out of sync; that divergence is preserved.
	ChangeStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus) (*domain.JobDescription, error)
}

type jobDescriptionRepository struct {
	base  entityRepo[domain.JobDescription]
	codec codec.JobDescriptionCodec
}

// NewJobDescriptionRepository constructs repository.
func NewJobDescriptionRepository(st store.Store) JobDescriptionRepository {
	c := codec.JobDescriptionCodec{}
	return &jobDescriptionRepository{
		base:  entityRepo[domain.JobDescription]{store: st, codec: c},
		codec: c,
	}
}

func (r *jobDescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	return r.base.getByID(ctx, id.String())
}

func (r *jobDescriptionRepository) List(ctx context.Context, includeInactive bool) ([]domain.JobDescription, error) {
	return r.base.list(ctx, includeInactive)
}

func (r *jobDescriptionRepository) Search(ctx context.Context, q JobDescriptionQuery) ([]domain.JobDescription, error) {
	set := filter.New[domain.JobDescription]().ActiveOnly(r.codec.ActivityColumn())
	if q.Status != nil {
		set.Exact("status", *q.Status)
	}
	if q.ClientID != nil {
		set.Exact("client_id", q.ClientID.String())
	}
	if q.RecruiterID != nil {
		set.Exact("recruiter_id", *q.RecruiterID)
	}
	set.AtLeast(q.MinSalaryMin, func(j domain.JobDescription) float64 { return j.MinSalary })
	set.AtMost(q.MinSalaryMax, func(j domain.JobDescription) float64 { return j.MinSalary })
	return r.base.search(ctx, set)
}

func (r *jobDescriptionRepository) Create(ctx context.Context, j domain.JobDescription) (*domain.JobDescription, error) {
	return r.base.create(ctx, j)
}

func (r *jobDescriptionRepository) Update(ctx context.Context, id uuid.UUID, p domain.JobDescriptionPatch) (*domain.JobDescription, error) {
	return r.base.update(ctx, id.String(), r.codec.PatchRow(p))
}

func (r *jobDescriptionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.delete(ctx, id.String())
}

func (r *jobDescriptionRepository) Deactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	return r.base.deactivate(ctx, id.String())
}

func (r *jobDescriptionRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	return r.base.reactivate(ctx, id.String())
}

func (r *jobDescriptionRepository) Close(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	patch := lifecycle.DeactivatePatch(r.codec.ActivityColumn(), time.Now())
	patch["status"] = string(domain.JobStatusClosed)
	return r.base.update(ctx, id.String(), patch)
}

func (r *jobDescriptionRepository) Reopen(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	patch := lifecycle.ReactivatePatch(r.codec.ActivityColumn())
	patch["status"] = string(domain.JobStatusOpen)
	return r.base.update(ctx, id.String(), patch)
}

func (r *jobDescriptionRepository) ChangeStatus(ctx context.Context, id uuid.UUID, status domain.JobStatus) (*domain.JobDescription, error) {
	return r.base.update(ctx, id.String(), store.Row{"status": string(status)})
}
