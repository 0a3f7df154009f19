package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/filter"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// ClientQuery filters client searches by description substring.
type ClientQuery struct {
	Description *string
}

// ClientRepository manages client records.
type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Client, error)
	Search(ctx context.Context, q ClientQuery) ([]domain.Client, error)
	Create(ctx context.Context, c domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, p domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type clientRepository struct {
	base  entityRepo[domain.Client]
	codec codec.ClientCodec
}

// NewClientRepository constructs repository.
func NewClientRepository(st store.Store) ClientRepository {
	c := codec.ClientCodec{}
	return &clientRepository{
		base:  entityRepo[domain.Client]{store: st, codec: c},
		codec: c,
	}
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.base.getByID(ctx, id.String())
}

func (r *clientRepository) List(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	return r.base.list(ctx, includeInactive)
}

func (r *clientRepository) Search(ctx context.Context, q ClientQuery) ([]domain.Client, error) {
	set := filter.New[domain.Client]().ActiveOnly(r.codec.ActivityColumn())
	set.Contains(q.Description, func(c domain.Client) string { return c.Description.ValueOr("") })
	return r.base.search(ctx, set)
}

func (r *clientRepository) Create(ctx context.Context, c domain.Client) (*domain.Client, error) {
	return r.base.create(ctx, c)
}

func (r *clientRepository) Update(ctx context.Context, id uuid.UUID, p domain.ClientPatch) (*domain.Client, error) {
	return r.base.update(ctx, id.String(), r.codec.PatchRow(p))
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.base.delete(ctx, id.String())
}

func (r *clientRepository) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.base.deactivate(ctx, id.String())
}

func (r *clientRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.base.reactivate(ctx, id.String())
}
