package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// ApplicantQuery filters applicant searches. Email and english level match
// exactly in the store; name and city match by case-insensitive substring,
// with name checked against both first and last name.
type ApplicantQuery struct {
	Name    *string
	City    *string
	English *string
	Email   *string
}

// ApplicantRepository manages applicant records.
type ApplicantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Applicant, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Applicant, error)
	Search(ctx context.Context, q ApplicantQuery) ([]domain.Applicant, error)
	Create(ctx context.Context, a domain.Applicant) (*domain.Applicant, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ApplicantPatch) (*domain.Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error)
}

type applicantRepository struct {
	base  entityRepo[domain.Applicant]
	codec codec.ApplicantCodec
}

// NewApplicantRepository constructs repository.
func NewApplicantRepository(st store.Store) ApplicantRepository {
	c := codec.ApplicantCodec{}
	return &applicantRepository{
		base:  entityRepo[domain.Applicant]{store: st, codec: c},
		codec: c,
	}
}

func (r *applicantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	return r.base.getByID(ctx, id.String())
}

func (r *applicantRepository) List(ctx context.Context, includeInactive bool) ([]domain.Applicant, error) {
	return r.base.list(ctx, includeInactive)
}

func (r *applicantRepository) Search(ctx context.Context, q ApplicantQuery) ([]domain.Applicant, error) {
	set := filter.New[domain.Applicant]().ActiveOnly(r.codec.ActivityColumn())
	if q.Email != nil {
		set.Exact("email", *q.Email)
	}
	if q.English != nil {
		set.Exact("english", *q.English)
	}
	set.Contains(q.Name,
		func(a domain.Applicant) string { return a.Name },
		func(a domain.Applicant) string { return a.LastName },
	)
	set.Contains(q.City, func(a domain.Applicant) string { return a.City })
	return r.base.search(ctx, set)
}

func (r *applicantRepository) Create(ctx context.Context, a domain.Applicant) (*domain.Applicant, error) {
	return r.base.create(ctx, a)
}

func (r *applicantRepository) Update(ctx context.Context, id uuid.UUID, p domain.ApplicantPatch) (*domain.Applicant, error) {
	return r.base.update(ctx, id.String(), r.codec.PatchRow(p))
}

func (r *applicantRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.delete(ctx, id.String())
}

func (r *applicantRepository) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	return r.base.deactivate(ctx, id.String())
}

func (r *applicantRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Applicant, error) {
	return r.base.reactivate(ctx, id.String())
}
