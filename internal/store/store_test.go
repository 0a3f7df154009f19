package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	in := time.Date(2024, 5, 1, 7, 30, 0, 0, loc)
	assert.Equal(t, "2024-05-01T10:30:00Z", FormatTimestamp(in))
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{
			name: "rfc3339 utc",
			in:   "2024-05-01T10:30:00Z",
			want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 with offset normalizes to utc",
			in:   "2024-05-01T12:30:00+02:00",
			want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "naive iso8601 reads as utc",
			in:   "2024-05-01T10:30:00.123456",
			want: time.Date(2024, 5, 1, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name: "naive without fraction",
			in:   "2024-05-01T10:30:00",
			want: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name: "space separated",
			in:   "2024-05-01 10:30:00.5",
			want: time.Date(2024, 5, 1, 10, 30, 0, 500000000, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("round-trip", func(t *testing.T) {
		now := time.Now()
		got, err := ParseTimestamp(FormatTimestamp(now))
		require.NoError(t, err)
		assert.True(t, now.UTC().Equal(got))
	})

	t.Run("garbage errors", func(t *testing.T) {
		_, err := ParseTimestamp("yesterday")
		assert.Error(t, err)
	})
}

func TestStoreErrorWrapping(t *testing.T) {
	inner := assert.AnError
	err := newError("query", "applicants", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "query")
	assert.Contains(t, err.Error(), "applicants")
}
