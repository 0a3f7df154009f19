package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alegonzalezz/ATS-backend/internal/store"
)

type person struct {
	Name string
	City string
	Pay  float64
}

func names(people []person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.Name)
	}
	return out
}

func TestStoreFilters(t *testing.T) {
	s := New[person]().ActiveOnly("deactive_at").Exact("city", "Cordoba")
	assert.Equal(t, store.Filters{"deactive_at": nil, "city": "Cordoba"}, s.StoreFilters())
}

func TestNarrow(t *testing.T) {
	people := []person{
		{Name: "Ana Gomez", City: "Cordoba", Pay: 1500},
		{Name: "Bruno Diaz", City: "Rosario", Pay: 2500},
		{Name: "Mariana Ruiz", City: "cordoba", Pay: 3500},
	}

	t.Run("no residuals passes everything through", func(t *testing.T) {
		assert.Equal(t, people, New[person]().Narrow(people))
	})

	t.Run("contains is case-insensitive substring", func(t *testing.T) {
		term := "ana"
		s := New[person]().Contains(&term, func(p person) string { return p.Name })
		assert.Equal(t, []string{"Ana Gomez", "Mariana Ruiz"}, names(s.Narrow(people)))
	})

	t.Run("contains matches any accessor", func(t *testing.T) {
		term := "rosario"
		s := New[person]().Contains(&term,
			func(p person) string { return p.Name },
			func(p person) string { return p.City },
		)
		assert.Equal(t, []string{"Bruno Diaz"}, names(s.Narrow(people)))
	})

	t.Run("nil and empty terms are no-ops", func(t *testing.T) {
		empty := ""
		s := New[person]().
			Contains(nil, func(p person) string { return p.Name }).
			Contains(&empty, func(p person) string { return p.Name })
		assert.Len(t, s.Narrow(people), 3)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		lo, hi := 1500.0, 2500.0
		s := New[person]().
			AtLeast(&lo, func(p person) float64 { return p.Pay }).
			AtMost(&hi, func(p person) float64 { return p.Pay })
		assert.Equal(t, []string{"Ana Gomez", "Bruno Diaz"}, names(s.Narrow(people)))
	})

	t.Run("predicates combine with and", func(t *testing.T) {
		term := "a"
		lo := 3000.0
		s := New[person]().
			Contains(&term, func(p person) string { return p.Name }).
			AtLeast(&lo, func(p person) float64 { return p.Pay })
		assert.Equal(t, []string{"Mariana Ruiz"}, names(s.Narrow(people)))
	})

	t.Run("nothing matching yields empty", func(t *testing.T) {
		term := "zzz"
		s := New[person]().Contains(&term, func(p person) string { return p.Name })
		assert.Empty(t, s.Narrow(people))
	})
}
