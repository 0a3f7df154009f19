package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
)

func newApplicantService() (*ApplicantService, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	svc := NewApplicantService(ApplicantDependencies{
		Repo:       repository.NewApplicantRepository(newTestStore()),
		Dispatcher: dispatcher,
	})
	return svc, dispatcher
}

func createTestApplicant(t *testing.T, svc *ApplicantService) *domain.Applicant {
	t.Helper()
	created, err := svc.Create(context.Background(), domain.Applicant{
		Name: "Ana", LastName: "Gomez", Email: "ana@example.com",
		Phone: "555", City: "Cordoba", English: "B2",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func TestApplicantServiceCreatePublishesEvent(t *testing.T) {
	svc, dispatcher := newApplicantService()
	created := createTestApplicant(t, svc)

	all := dispatcher.all()
	require.Len(t, all, 1)
	e := all[0]
	assert.Equal(t, events.EventEntityCreated, e.Type)
	assert.Equal(t, "applicants", e.Table)
	assert.Equal(t, created.ID.String(), e.EntityID)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
}

func TestApplicantServiceGetWithoutCache(t *testing.T) {
	svc, _ := newApplicantService()
	created := createTestApplicant(t, svc)
	ctx := context.Background()

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := svc.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicantServiceMutationEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("update", func(t *testing.T) {
		svc, dispatcher := newApplicantService()
		created := createTestApplicant(t, svc)

		updated, err := svc.Update(ctx, created.ID, domain.ApplicantPatch{
			City: domain.NewField("Mendoza"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, events.EventEntityUpdated, dispatcher.last().Type)
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		svc, dispatcher := newApplicantService()
		created := createTestApplicant(t, svc)

		_, err := svc.Deactivate(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, events.EventEntityDeactivated, dispatcher.last().Type)

		_, err = svc.Reactivate(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, events.EventEntityReactivated, dispatcher.last().Type)
	})

	t.Run("delete", func(t *testing.T) {
		svc, dispatcher := newApplicantService()
		created := createTestApplicant(t, svc)

		deleted, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, events.EventEntityDeleted, dispatcher.last().Type)
	})

	t.Run("misses publish nothing", func(t *testing.T) {
		svc, dispatcher := newApplicantService()

		updated, err := svc.Update(ctx, uuid.New(), domain.ApplicantPatch{City: domain.NewField("x")})
		require.NoError(t, err)
		assert.Nil(t, updated)

		deleted, err := svc.Delete(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)

		assert.Empty(t, dispatcher.all())
	})
}

func TestApplicantServiceListAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newApplicantService()
	created := createTestApplicant(t, svc)

	_, err := svc.Deactivate(ctx, created.ID)
	require.NoError(t, err)

	listed, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	term := "ana"
	found, err := svc.Search(ctx, repository.ApplicantQuery{Name: &term})
	require.NoError(t, err)
	assert.Empty(t, found)
}
