package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/alegonzalezz/ATS-backend/internal/api/http/handlers"
	"github.com/alegonzalezz/ATS-backend/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Applicants      *handlers.ApplicantsHandler
	Clients         *handlers.ClientsHandler
	Recruiters      *handlers.RecruitersHandler
	JobDescriptions *handlers.JobDescriptionsHandler
	JobApplications *handlers.JobApplicationsHandler
	Tables          *handlers.TablesHandler
	Metrics         *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Typed entity routes come before the
// generic table surface so they win route matching, and static segments such
// as /search come before their sibling /:id routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Health)

	applicants := api.Group("/applicants")
	applicants.Get("/", cfg.Applicants.List)
	applicants.Post("/", cfg.Applicants.Create)
	applicants.Get("/search", cfg.Applicants.Search)
	applicants.Get("/:id", cfg.Applicants.Get)
	applicants.Put("/:id", cfg.Applicants.Update)
	applicants.Delete("/:id", cfg.Applicants.Delete)
	applicants.Post("/:id/deactivate", cfg.Applicants.Deactivate)
	applicants.Post("/:id/reactivate", cfg.Applicants.Reactivate)

	clients := api.Group("/clients")
	clients.Get("/", cfg.Clients.List)
	clients.Post("/", cfg.Clients.Create)
	clients.Get("/search", cfg.Clients.Search)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Put("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)
	clients.Post("/:id/deactivate", cfg.Clients.Deactivate)
	clients.Post("/:id/reactivate", cfg.Clients.Reactivate)

	recruiters := api.Group("/recruiters")
	recruiters.Get("/", cfg.Recruiters.List)
	recruiters.Post("/", cfg.Recruiters.Create)
	recruiters.Get("/search", cfg.Recruiters.Search)
	recruiters.Get("/:id", cfg.Recruiters.Get)
	recruiters.Put("/:id", cfg.Recruiters.Update)
	recruiters.Delete("/:id", cfg.Recruiters.Delete)
	recruiters.Post("/:id/deactivate", cfg.Recruiters.Deactivate)
	recruiters.Post("/:id/reactivate", cfg.Recruiters.Reactivate)

	jobs := api.Group("/job-descriptions")
	jobs.Get("/", cfg.JobDescriptions.List)
	jobs.Post("/", cfg.JobDescriptions.Create)
	jobs.Get("/search", cfg.JobDescriptions.Search)
	jobs.Get("/:id", cfg.JobDescriptions.Get)
	jobs.Put("/:id", cfg.JobDescriptions.Update)
	jobs.Delete("/:id", cfg.JobDescriptions.Delete)
	jobs.Post("/:id/close", cfg.JobDescriptions.Close)
	jobs.Post("/:id/reopen", cfg.JobDescriptions.Reopen)
	jobs.Put("/:id/status", cfg.JobDescriptions.ChangeStatus)

	applications := api.Group("/applicant-job-applications")
	applications.Get("/", cfg.JobApplications.List)
	applications.Post("/", cfg.JobApplications.Create)
	applications.Get("/search", cfg.JobApplications.Search)
	applications.Get("/:id", cfg.JobApplications.Get)
	applications.Put("/:id", cfg.JobApplications.Update)
	applications.Delete("/:id", cfg.JobApplications.Delete)
	applications.Post("/:id/deactivate", cfg.JobApplications.Deactivate)
	applications.Post("/:id/reactivate", cfg.JobApplications.Reactivate)
	applications.Post("/:id/assign-recruiter", cfg.JobApplications.AssignRecruiter)
	applications.Post("/:id/unassign-recruiter", cfg.JobApplications.UnassignRecruiter)

	api.Get("/:table", cfg.Tables.List)
	api.Post("/:table", cfg.Tables.Create)
	api.Get("/:table/:id", cfg.Tables.Get)
	api.Put("/:table/:id", cfg.Tables.Update)
	api.Delete("/:table/:id", cfg.Tables.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Endpoint not found"})
	})
}
