package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

func TestApplicantCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())

	created := createApplicant(t, repo, "Ana", "Gomez", "Cordoba")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotNil(t, created.CreatedAt)
	assert.Nil(t, created.DeactiveAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	missing, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicantListFiltersInactive(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())

	active := createApplicant(t, repo, "Ana", "Gomez", "Cordoba")
	retired := createApplicant(t, repo, "Bruno", "Diaz", "Rosario")
	_, err := repo.Deactivate(ctx, retired.ID)
	require.NoError(t, err)

	activeOnly, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, active.ID, activeOnly[0].ID)

	everyone, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, everyone, 2)

	for _, a := range activeOnly {
		assert.Nil(t, a.DeactiveAt)
	}
}

func TestApplicantDeactivateReactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())
	created := createApplicant(t, repo, "Ana", "Gomez", "Cordoba")

	first, err := repo.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotNil(t, first.DeactiveAt)

	// Deactivating again keeps the record inactive and refreshes the stamp.
	time.Sleep(2 * time.Millisecond)
	second, err := repo.Deactivate(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.NotNil(t, second.DeactiveAt)
	assert.True(t, second.DeactiveAt.After(*first.DeactiveAt))

	restored, err := repo.Reactivate(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Nil(t, restored.DeactiveAt)
	assert.True(t, restored.Active())

	missing, err := repo.Deactivate(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApplicantUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())
	created := createApplicant(t, repo, "Ana", "Gomez", "Cordoba")

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, domain.ApplicantPatch{
			City: domain.NewField("Mendoza"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Mendoza", updated.City)
		assert.Equal(t, "Ana", updated.Name)
		assert.Equal(t, created.Email, updated.Email)
	})

	t.Run("empty patch reads the current record", func(t *testing.T) {
		updated, err := repo.Update(ctx, created.ID, domain.ApplicantPatch{})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Mendoza", updated.City)
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		updated, err := repo.Update(ctx, uuid.New(), domain.ApplicantPatch{})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestApplicantDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())
	created := createApplicant(t, repo, "Ana", "Gomez", "Cordoba")

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestApplicantSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicantRepository(newTestStore())

	createApplicant(t, repo, "Ana", "Gomez", "Cordoba")
	createApplicant(t, repo, "Mariana", "Ruiz", "Rosario")
	santana := createApplicant(t, repo, "Bruno", "Santana", "Cordoba")
	inactive := createApplicant(t, repo, "Anastasia", "Lopez", "Cordoba")
	_, err := repo.Deactivate(ctx, inactive.ID)
	require.NoError(t, err)

	t.Run("name matches first and last name case-insensitively", func(t *testing.T) {
		term := "ana"
		found, err := repo.Search(ctx, ApplicantQuery{Name: &term})
		require.NoError(t, err)
		require.Len(t, found, 3)
		names := make([]string, 0, len(found))
		for _, a := range found {
			names = append(names, a.Name)
		}
		assert.ElementsMatch(t, []string{"Ana", "Mariana", "Bruno"}, names)
	})

	t.Run("empty query returns the full active set", func(t *testing.T) {
		found, err := repo.Search(ctx, ApplicantQuery{})
		require.NoError(t, err)
		assert.Len(t, found, 3)
		for _, a := range found {
			assert.True(t, a.Active())
		}
	})

	t.Run("inactive records never match", func(t *testing.T) {
		term := "anastasia"
		found, err := repo.Search(ctx, ApplicantQuery{Name: &term})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("city narrows by substring", func(t *testing.T) {
		city := "cord"
		found, err := repo.Search(ctx, ApplicantQuery{City: &city})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("email matches exactly", func(t *testing.T) {
		email := "Bruno@example.com"
		found, err := repo.Search(ctx, ApplicantQuery{Email: &email})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, santana.ID, found[0].ID)

		partial := "Bruno"
		found, err = repo.Search(ctx, ApplicantQuery{Email: &partial})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("filters combine", func(t *testing.T) {
		term := "ana"
		city := "rosario"
		found, err := repo.Search(ctx, ApplicantQuery{Name: &term, City: &city})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Mariana", found[0].Name)
	})
}
