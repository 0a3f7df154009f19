package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/store"
)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateActive, StateOf(nil))

	at := time.Now()
	assert.Equal(t, StateInactive, StateOf(&at))
}

func TestDeactivatePatch(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	patch := DeactivatePatch("deactive_at", now)
	require.Len(t, patch, 1)
	assert.Equal(t, "2024-05-01T10:30:00Z", patch["deactive_at"])
}

func TestReactivatePatch(t *testing.T) {
	patch := ReactivatePatch("deactive")
	require.Len(t, patch, 1)
	v, ok := patch["deactive"]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, store.Row{"deactive": nil}, patch)
}
