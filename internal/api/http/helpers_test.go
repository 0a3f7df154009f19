package http

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alegonzalezz/ATS-backend/internal/api/http/handlers"
	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/config"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/observability"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/internal/store"
)

// testAPI is a fully wired application over the in-memory store. The store
// is exposed so tests can seed rows that bypass the HTTP surface.
type testAPI struct {
	app *fiber.App
	mem *store.Memory
}

func newTestAPI() *testAPI {
	return newTestAPIWithConfig(config.HTTPConfig{
		RequestTimeoutSeconds: 5,
		CORSAllowOrigins:      "*",
	})
}

func newTestAPIWithConfig(cfg config.HTTPConfig) *testAPI {
	mem := store.NewMemory(codec.JobApplicationCodec{}.Table())
	dispatcher := events.NewInMemoryDispatcher()

	applicantService := service.NewApplicantService(service.ApplicantDependencies{
		Repo:       repository.NewApplicantRepository(mem),
		Dispatcher: dispatcher,
	})
	clientService := service.NewClientService(service.ClientDependencies{
		Repo:       repository.NewClientRepository(mem),
		Dispatcher: dispatcher,
	})
	recruiterService := service.NewRecruiterService(service.RecruiterDependencies{
		Repo:       repository.NewRecruiterRepository(mem),
		Dispatcher: dispatcher,
	})
	jobService := service.NewJobDescriptionService(service.JobDescriptionDependencies{
		Repo:       repository.NewJobDescriptionRepository(mem),
		Dispatcher: dispatcher,
	})
	applicationService := service.NewJobApplicationService(service.JobApplicationDependencies{
		Repo:       repository.NewJobApplicationRepository(mem),
		Dispatcher: dispatcher,
	})
	tableService := service.NewTableService(
		repository.NewTableRepository(mem, codec.NewRegistry()),
		nil,
		dispatcher,
	)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: "ats-backend-test"})
	RegisterMiddlewares(app, zap.NewNop(), metrics, cfg)
	RegisterRoutes(app, RouteConfig{
		Health:          handlers.NewHealthHandler("ats-backend", "test", mem, nil),
		Applicants:      handlers.NewApplicantsHandler(applicantService),
		Clients:         handlers.NewClientsHandler(clientService),
		Recruiters:      handlers.NewRecruitersHandler(recruiterService),
		JobDescriptions: handlers.NewJobDescriptionsHandler(jobService),
		JobApplications: handlers.NewJobApplicationsHandler(applicationService),
		Tables:          handlers.NewTablesHandler(tableService),
		Metrics:         metrics,
	})
	return &testAPI{app: app, mem: mem}
}

// request sends a JSON request and decodes the JSON response body. A nil
// body sends an empty request.
func (a *testAPI) request(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return a.send(t, req)
}

// requestRaw sends the body verbatim, for malformed payloads.
func (a *testAPI) requestRaw(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return a.send(t, req)
}

// requestText returns the raw response body, for non-JSON endpoints such
// as /metrics.
func (a *testAPI) requestText(t *testing.T, method, path string) (int, string) {
	t.Helper()
	resp, err := a.app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func (a *testAPI) send(t *testing.T, req *nethttp.Request) (int, map[string]any) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "response is not JSON: %s", raw)
	}
	return resp.StatusCode, body
}

// object returns the "data" member as a single JSON object.
func object(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	m, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %T", body["data"])
	return m
}

// list returns the "data" member as a JSON array.
func list(t *testing.T, body map[string]any) []any {
	t.Helper()
	l, ok := body["data"].([]any)
	require.True(t, ok, "expected data array, got %T", body["data"])
	return l
}

func (a *testAPI) seedApplicant(t *testing.T, name, lastName, city string) string {
	t.Helper()
	status, body := a.request(t, fiber.MethodPost, "/api/applicants", fiber.Map{
		"name":      name,
		"last_name": lastName,
		"email":     name + "@example.com",
		"phone":     "+54 11 5555-0000",
		"city":      city,
		"english":   "B2",
	})
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := object(t, body)["id"].(string)
	require.True(t, ok)
	return id
}

func (a *testAPI) seedClient(t *testing.T, description string) string {
	t.Helper()
	status, body := a.request(t, fiber.MethodPost, "/api/clients", fiber.Map{
		"description": description,
	})
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := object(t, body)["id"].(string)
	require.True(t, ok)
	return id
}

func (a *testAPI) seedRecruiter(t *testing.T, name string) string {
	t.Helper()
	status, body := a.request(t, fiber.MethodPost, "/api/recruiters", fiber.Map{
		"name": name,
	})
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := object(t, body)["id"].(string)
	require.True(t, ok)
	return id
}

func (a *testAPI) seedJob(t *testing.T, description string, minSalary float64) string {
	t.Helper()
	status, body := a.request(t, fiber.MethodPost, "/api/job-descriptions", fiber.Map{
		"description": description,
		"min_salary":  minSalary,
	})
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := object(t, body)["id"].(string)
	require.True(t, ok)
	return id
}

// seedApplication returns the serial id as a string ready for path building.
func (a *testAPI) seedApplication(t *testing.T, applicantID, jobID string) string {
	t.Helper()
	status, body := a.request(t, fiber.MethodPost, "/api/applicant-job-applications", fiber.Map{
		"applicant_id":       applicantID,
		"job_description_id": jobID,
	})
	require.Equal(t, fiber.StatusCreated, status)
	id, ok := object(t, body)["id"].(float64)
	require.True(t, ok)
	return strconv.FormatInt(int64(id), 10)
}
