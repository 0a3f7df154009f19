// Package filter composes the two-phase search used against the record
// store: equality predicates pushed store-side, everything richer (substring
// matching, numeric ranges) evaluated in process on the fetched rows.
package filter

import (
	"strings"

	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// Predicate narrows entities in process after the store query.
type Predicate[E any] func(E) bool

// Set accumulates the filters of one search.
type Set[E any] struct {
	exact     store.Filters
	residuals []Predicate[E]
}

// New returns an empty filter set.
func New[E any]() *Set[E] {
	return &Set[E]{exact: store.Filters{}}
}

// ActiveOnly requires the deactivation column to be NULL store-side. Every
// list and search applies this unless the caller opts out.
func (s *Set[E]) ActiveOnly(column string) *Set[E] {
	s.exact[column] = nil
	return s
}

// Exact requires column = value store-side. A nil value matches NULL.
func (s *Set[E]) Exact(column string, value any) *Set[E] {
	s.exact[column] = value
	return s
}

// Where adds an in-process predicate.
func (s *Set[E]) Where(p Predicate[E]) *Set[E] {
	s.residuals = append(s.residuals, p)
	return s
}

// Contains adds a case-insensitive substring predicate matching any of the
// given accessors. A nil or empty term is a no-op.
func (s *Set[E]) Contains(term *string, accessors ...func(E) string) *Set[E] {
	if term == nil || *term == "" {
		return s
	}
	needle := strings.ToLower(*term)
	return s.Where(func(e E) bool {
		for _, get := range accessors {
			if strings.Contains(strings.ToLower(get(e)), needle) {
				return true
			}
		}
		return false
	})
}

// AtLeast adds an in-process lower bound. A nil bound is a no-op.
func (s *Set[E]) AtLeast(bound *float64, get func(E) float64) *Set[E] {
	if bound == nil {
		return s
	}
	b := *bound
	return s.Where(func(e E) bool { return get(e) >= b })
}

// AtMost adds an in-process upper bound. A nil bound is a no-op.
func (s *Set[E]) AtMost(bound *float64, get func(E) float64) *Set[E] {
	if bound == nil {
		return s
	}
	b := *bound
	return s.Where(func(e E) bool { return get(e) <= b })
}

// StoreFilters returns the equality filters to push into the record store.
func (s *Set[E]) StoreFilters() store.Filters {
	return s.exact
}

// Narrow applies the residual predicates to the fetched entities.
func (s *Set[E]) Narrow(items []E) []E {
	if len(s.residuals) == 0 {
		return items
	}
	var out []E
	for _, e := range items {
		if s.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Set[E]) matches(e E) bool {
	for _, p := range s.residuals {
		if !p(e) {
			return false
		}
	}
	return true
}
