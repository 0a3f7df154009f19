package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

func newTableService() (*TableService, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	repo := repository.NewTableRepository(newTestStore(), codec.NewRegistry())
	return NewTableService(repo, nil, dispatcher), dispatcher
}

func TestTableServiceRawAccess(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTableService()

	inserted, err := svc.Insert(ctx, "audit_log", store.Row{"action": "login"})
	require.NoError(t, err)
	require.NotNil(t, inserted["id"])
	assert.Equal(t, events.EventEntityCreated, dispatcher.last().Type)
	assert.Equal(t, "audit_log", dispatcher.last().Table)

	got, err := svc.Get(ctx, "audit_log", inserted["id"])
	require.NoError(t, err)
	require.NotNil(t, got)

	updated, err := svc.Update(ctx, "audit_log", inserted["id"], store.Row{"action": "logout"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "logout", updated["action"])
	assert.Equal(t, events.EventEntityUpdated, dispatcher.last().Type)

	rows, err := svc.Query(ctx, "audit_log", store.Filters{"action": "logout"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	deleted, err := svc.Delete(ctx, "audit_log", inserted["id"])
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, events.EventEntityDeleted, dispatcher.last().Type)
}

func TestTableServiceMissesPublishNothing(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTableService()

	updated, err := svc.Update(ctx, "audit_log", "nope", store.Row{"x": 1})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := svc.Delete(ctx, "audit_log", "nope")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Empty(t, dispatcher.all())
}

func TestTableServiceValidatesEntityTables(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTableService()

	_, err := svc.Insert(ctx, "applicants", store.Row{"id": "not-a-uuid"})
	require.Error(t, err)
	assert.Empty(t, dispatcher.all())
}
