package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/domain"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

func newTestStore() *store.Memory {
	return store.NewMemory(codec.JobApplicationCodec{}.Table())
}

func createApplicant(t *testing.T, r ApplicantRepository, name, lastName, city string) domain.Applicant {
	t.Helper()
	created, err := r.Create(context.Background(), domain.Applicant{
		Name:     name,
		LastName: lastName,
		LinkedIn: "in/" + name,
		Email:    name + "@example.com",
		Phone:    "555",
		City:     city,
		English:  "B2",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return *created
}

func createClient(t *testing.T, r ClientRepository, description string) domain.Client {
	t.Helper()
	created, err := r.Create(context.Background(), domain.Client{
		Description: domain.NewField(description),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return *created
}

func createJob(t *testing.T, r JobDescriptionRepository, j domain.JobDescription) domain.JobDescription {
	t.Helper()
	created, err := r.Create(context.Background(), j)
	require.NoError(t, err)
	require.NotNil(t, created)
	return *created
}
