package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	httptransport "github.com/alegonzalezz/ATS-backend/internal/api/http"
	"github.com/alegonzalezz/ATS-backend/internal/api/http/handlers"
	"github.com/alegonzalezz/ATS-backend/internal/cache"
	"github.com/alegonzalezz/ATS-backend/internal/codec"
	"github.com/alegonzalezz/ATS-backend/internal/config"
	"github.com/alegonzalezz/ATS-backend/internal/events"
	"github.com/alegonzalezz/ATS-backend/internal/observability"
	"github.com/alegonzalezz/ATS-backend/internal/repository"
	"github.com/alegonzalezz/ATS-backend/internal/service"
	"github.com/alegonzalezz/ATS-backend/internal/store"
	"github.com/alegonzalezz/ATS-backend/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init record store", zap.Error(err))
	}
	if closeStore != nil {
		defer closeStore()
	}

	var redis *cache.Redis
	var recordCache *cache.Cache
	if cfg.Redis.Addr != "" {
		redis = cache.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		recordCache = cache.New(redis, cfg.Cache.TTL())
	}

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger, cfg.Audit)
	worker.StartAuditWorker(auditService)

	applicantService := service.NewApplicantService(service.ApplicantDependencies{
		Repo:       repository.NewApplicantRepository(st),
		Cache:      recordCache,
		Dispatcher: dispatcher,
	})
	clientService := service.NewClientService(service.ClientDependencies{
		Repo:       repository.NewClientRepository(st),
		Cache:      recordCache,
		Dispatcher: dispatcher,
	})
	recruiterService := service.NewRecruiterService(service.RecruiterDependencies{
		Repo:       repository.NewRecruiterRepository(st),
		Cache:      recordCache,
		Dispatcher: dispatcher,
	})
	jobService := service.NewJobDescriptionService(service.JobDescriptionDependencies{
		Repo:       repository.NewJobDescriptionRepository(st),
		Cache:      recordCache,
		Dispatcher: dispatcher,
	})
	applicationService := service.NewJobApplicationService(service.JobApplicationDependencies{
		Repo:       repository.NewJobApplicationRepository(st),
		Cache:      recordCache,
		Dispatcher: dispatcher,
	})
	tableService := service.NewTableService(
		repository.NewTableRepository(st, codec.NewRegistry()),
		recordCache,
		dispatcher,
	)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.HTTP)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, st, redis),
		Applicants:      handlers.NewApplicantsHandler(applicantService),
		Clients:         handlers.NewClientsHandler(clientService),
		Recruiters:      handlers.NewRecruitersHandler(recruiterService),
		JobDescriptions: handlers.NewJobDescriptionsHandler(jobService),
		JobApplications: handlers.NewJobApplicationsHandler(applicationService),
		Tables:          handlers.NewTablesHandler(tableService),
		Metrics:         metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSupabase:
		sb, err := store.NewSupabase(cfg.Supabase, logger)
		if err != nil {
			return nil, nil, err
		}
		return sb, nil, nil
	case config.StoreDriverPostgres:
		pg, err := store.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.StoreDriverMemory:
		return store.NewMemory(codec.JobApplicationCodec{}.Table()), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
