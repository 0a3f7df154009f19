package repository

import (
	"context"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// RecruiterQuery filters recruiter searches by name and description
// substrings.
type RecruiterQuery struct {
	Name        *string
	Description *string
}

// RecruiterRepository manages recruiter records. Ids are polymorphic:
// lookups accept whichever representation (integer or uuid) the record
// carries.
type RecruiterRepository interface {
	GetByID(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Recruiter, error)
	Search(ctx context.Context, q RecruiterQuery) ([]domain.Recruiter, error)
	Create(ctx context.Context, rec domain.Recruiter) (*domain.Recruiter, error)
	Update(ctx context.Context, id domain.RecruiterID, p domain.RecruiterPatch) (*domain.Recruiter, error)
	Delete(ctx context.Context, id domain.RecruiterID) (bool, error)
	Deactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error)
	Reactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error)
}

type recruiterRepository struct {
	base  entityRepo[domain.Recruiter]
	codec codec.RecruiterCodec
}

// NewRecruiterRepository constructs repository.
func NewRecruiterRepository(st store.Store) RecruiterRepository {
	c := codec.RecruiterCodec{}
	return &recruiterRepository{
		base:  entityRepo[domain.Recruiter]{store: st, codec: c},
		codec: c,
	}
}

func (r *recruiterRepository) GetByID(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
	return r.base.getByID(ctx, id.WireValue())
}

func (r *recruiterRepository) List(ctx context.Context, includeInactive bool) ([]domain.Recruiter, error) {
	return r.base.list(ctx, includeInactive)
}

func (r *recruiterRepository) Search(ctx context.Context, q RecruiterQuery) ([]domain.Recruiter, error) {
	set := filter.New[domain.Recruiter]().ActiveOnly(r.codec.ActivityColumn())
	set.Contains(q.Name, func(rec domain.Recruiter) string { return rec.Name })
	set.Contains(q.Description, func(rec domain.Recruiter) string { return rec.Description.ValueOr("") })
	return r.base.search(ctx, set)
}

func (r *recruiterRepository) Create(ctx context.Context, rec domain.Recruiter) (*domain.Recruiter, error) {
	return r.base.create(ctx, rec)
}

func (r *recruiterRepository) Update(ctx context.Context, id domain.RecruiterID, p domain.RecruiterPatch) (*domain.Recruiter, error) {
	return r.base.update(ctx, id.WireValue(), r.codec.PatchRow(p))
}

func (r *recruiterRepository) Delete(ctx context.Context, id domain.RecruiterID) (bool, error) {
	return r.base.delete(ctx, id.WireValue())
}

func (r *recruiterRepository) Deactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
	return r.base.deactivate(ctx, id.WireValue())
}

func (r *recruiterRepository) Reactivate(ctx context.Context, id domain.RecruiterID) (*domain.Recruiter, error) {
	return r.base.reactivate(ctx, id.WireValue())
}
