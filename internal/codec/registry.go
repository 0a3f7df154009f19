package codec

import "github.com/alegonzalezz/ATS-backend/internal/store"

// RowValidator checks that a full wire row decodes as its entity type.
type RowValidator func(store.Row) error

// Registry resolves table names to optional row validators. Tables without
// a registered entity type pass through as raw rows.
type Registry struct {
	validators map[string]RowValidator
}

// NewRegistry registers the five entity tables.
func NewRegistry() *Registry {
	r := &Registry{validators: make(map[string]RowValidator)}
	register(r, ApplicantCodec{})
	register(r, ClientCodec{})
	register(r, RecruiterCodec{})
	register(r, JobDescriptionCodec{})
	register(r, JobApplicationCodec{})
	return r
}

func register[E any](r *Registry, c Codec[E]) {
	r.validators[c.Table()] = func(row store.Row) error {
		_, err := c.FromRow(row)
		return err
	}
}

// Known reports whether table holds a typed entity.
func (r *Registry) Known(table string) bool {
	_, ok := r.validators[table]
	return ok
}

// ValidateRow runs the table's validator when one is registered.
func (r *Registry) ValidateRow(table string, row store.Row) error {
	v, ok := r.validators[table]
	if !ok {
		return nil
	}
	return v(row)
}
