package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/domain"
)

func TestJobDescriptionCreateDefaultsToOpen(t *testing.T) {
	ctx := context.Background()
	repo := NewJobDescriptionRepository(newTestStore())

	created := createJob(t, repo, domain.JobDescription{
		Description: domain.NewField("Backend developer"),
		MinSalary:   1500,
	})
	assert.Equal(t, domain.JobStatusOpen, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.DeactiveAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)
}

func TestJobDescriptionCloseAndReopen(t *testing.T) {
	ctx := context.Background()
	repo := NewJobDescriptionRepository(newTestStore())
	created := createJob(t, repo, domain.JobDescription{MinSalary: 1500})

	closed, err := repo.Close(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, closed)
	assert.Equal(t, domain.JobStatusClosed, closed.Status)
	assert.NotNil(t, closed.DeactiveAt)

	listed, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, listed)

	reopened, err := repo.Reopen(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reopened)
	assert.Equal(t, domain.JobStatusOpen, reopened.Status)
	assert.Nil(t, reopened.DeactiveAt)

	listed, err = repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	missing, err := repo.Close(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJobDescriptionChangeStatusLeavesActivityAlone(t *testing.T) {
	ctx := context.Background()
	repo := NewJobDescriptionRepository(newTestStore())
	created := createJob(t, repo, domain.JobDescription{MinSalary: 1500})

	t.Run("pausing an active job keeps it listed", func(t *testing.T) {
		paused, err := repo.ChangeStatus(ctx, created.ID, domain.JobStatusPaused)
		require.NoError(t, err)
		require.NotNil(t, paused)
		assert.Equal(t, domain.JobStatusPaused, paused.Status)
		assert.Nil(t, paused.DeactiveAt)

		listed, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("status and activity can diverge", func(t *testing.T) {
		_, err := repo.Deactivate(ctx, created.ID)
		require.NoError(t, err)

		// Writing OPEN onto a deactivated job does not resurrect it.
		diverged, err := repo.ChangeStatus(ctx, created.ID, domain.JobStatusOpen)
		require.NoError(t, err)
		require.NotNil(t, diverged)
		assert.Equal(t, domain.JobStatusOpen, diverged.Status)
		assert.NotNil(t, diverged.DeactiveAt)

		listed, err := repo.List(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})
}

func TestJobDescriptionUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewJobDescriptionRepository(newTestStore())
	created := createJob(t, repo, domain.JobDescription{
		MinSalary: 1500,
		MaxSalary: domain.NewField(2500.0),
	})

	updated, err := repo.Update(ctx, created.ID, domain.JobDescriptionPatch{
		MinSalary: domain.NewField(1800.0),
		MaxSalary: domain.NullField[float64](),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 1800.0, updated.MinSalary)
	assert.True(t, updated.MaxSalary.IsNull())
	assert.Equal(t, created.Status, updated.Status)

	none, err := repo.Update(ctx, uuid.New(), domain.JobDescriptionPatch{})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestJobDescriptionSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewJobDescriptionRepository(newTestStore())
	clientID := uuid.New()

	backend := createJob(t, repo, domain.JobDescription{
		Description: domain.NewField("Backend developer"),
		MinSalary:   1500,
		RecruiterID: domain.NewField(int64(3)),
		ClientID:    domain.NewField(clientID),
	})
	createJob(t, repo, domain.JobDescription{
		Description: domain.NewField("Data engineer"),
		MinSalary:   3000,
		Status:      domain.JobStatusPaused,
	})
	closedJob := createJob(t, repo, domain.JobDescription{MinSalary: 2000})
	_, err := repo.Close(ctx, closedJob.ID)
	require.NoError(t, err)

	t.Run("status exact", func(t *testing.T) {
		status := "PAUSED"
		found, err := repo.Search(ctx, JobDescriptionQuery{Status: &status})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, domain.JobStatusPaused, found[0].Status)
	})

	t.Run("recruiter id exact", func(t *testing.T) {
		rid := int64(3)
		found, err := repo.Search(ctx, JobDescriptionQuery{RecruiterID: &rid})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, backend.ID, found[0].ID)
	})

	t.Run("client id exact", func(t *testing.T) {
		found, err := repo.Search(ctx, JobDescriptionQuery{ClientID: &clientID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, backend.ID, found[0].ID)
	})

	t.Run("salary bounds are inclusive on min_salary", func(t *testing.T) {
		lo, hi := 1500.0, 3000.0
		found, err := repo.Search(ctx, JobDescriptionQuery{MinSalaryMin: &lo, MinSalaryMax: &hi})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		tight := 2000.0
		found, err = repo.Search(ctx, JobDescriptionQuery{MinSalaryMin: &tight})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 3000.0, found[0].MinSalary)
	})

	t.Run("closed jobs are inactive and excluded", func(t *testing.T) {
		found, err := repo.Search(ctx, JobDescriptionQuery{})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})
}
