package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldStates(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var f Field[string]
		assert.False(t, f.IsSet())
		assert.False(t, f.IsNull())
		_, ok := f.Value()
		assert.False(t, ok)
		assert.Nil(t, f.Ptr())
		assert.Equal(t, "fallback", f.ValueOr("fallback"))
	})

	t.Run("NewField holds a value", func(t *testing.T) {
		f := NewField("remote")
		assert.True(t, f.IsSet())
		assert.False(t, f.IsNull())
		v, ok := f.Value()
		require.True(t, ok)
		assert.Equal(t, "remote", v)
		require.NotNil(t, f.Ptr())
		assert.Equal(t, "remote", *f.Ptr())
		assert.Equal(t, "remote", f.ValueOr("fallback"))
	})

	t.Run("NullField is set but carries no value", func(t *testing.T) {
		f := NullField[int64]()
		assert.True(t, f.IsSet())
		assert.True(t, f.IsNull())
		_, ok := f.Value()
		assert.False(t, ok)
		assert.Nil(t, f.Ptr())
		assert.EqualValues(t, 42, f.ValueOr(42))
	})

	t.Run("Set replaces a prior null", func(t *testing.T) {
		var f Field[float64]
		f.SetNull()
		require.True(t, f.IsNull())

		f.Set(1500)
		assert.False(t, f.IsNull())
		v, ok := f.Value()
		require.True(t, ok)
		assert.Equal(t, 1500.0, v)
	})

	t.Run("SetNull clears a prior value", func(t *testing.T) {
		f := NewField(7)
		f.SetNull()
		assert.True(t, f.IsSet())
		assert.True(t, f.IsNull())
		_, ok := f.Value()
		assert.False(t, ok)
	})
}

func TestFieldJSON(t *testing.T) {
	type payload struct {
		City Field[string] `json:"city"`
	}

	t.Run("absent key stays absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.City.IsSet())
	})

	t.Run("null becomes an explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"city":null}`), &p))
		assert.True(t, p.City.IsSet())
		assert.True(t, p.City.IsNull())
	})

	t.Run("value is decoded", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"city":"Cordoba"}`), &p))
		assert.True(t, p.City.IsSet())
		assert.False(t, p.City.IsNull())
		assert.Equal(t, "Cordoba", p.City.ValueOr(""))
	})

	t.Run("value overwrites the zero state", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"city":null}`), &p))
		require.NoError(t, json.Unmarshal([]byte(`{"city":"BsAs"}`), &p))
		assert.False(t, p.City.IsNull())
		assert.Equal(t, "BsAs", p.City.ValueOr(""))
	})

	t.Run("timestamps decode through the field", func(t *testing.T) {
		type stamped struct {
			At Field[time.Time] `json:"at"`
		}
		var p stamped
		require.NoError(t, json.Unmarshal([]byte(`{"at":"2024-05-01T10:30:00Z"}`), &p))
		at, ok := p.At.Value()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), at.UTC())
	})

	t.Run("marshal renders value or null", func(t *testing.T) {
		b, err := json.Marshal(payload{City: NewField("Rosario")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"city":"Rosario"}`, string(b))

		b, err = json.Marshal(payload{City: NullField[string]()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"city":null}`, string(b))

		b, err = json.Marshal(payload{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"city":null}`, string(b))
	})
}
