package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/alegonzalezz/ATS-backend/internal/config"
	"github.com/alegonzalezz/ATS-backend/internal/observability"
	"github.com/alegonzalezz/ATS-backend/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// The request logger sits outside the error handler so it observes the status
// actually written to the client.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg config.HTTPConfig) {
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	if cfg.RateLimitRPS > 0 {
		app.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	}
	if cfg.MaxConcurrent > 0 {
		app.Use(concurrencyLimitMiddleware(semaphore.NewWeighted(int64(cfg.MaxConcurrent))))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.NewInternalError(nil)
			}
			if err != nil {
				domainErr := util.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed",
						zap.String("method", c.Method()),
						zap.String("path", c.Path()),
						zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(fiber.Map{"success": false, "error": domainErr.Message})
				err = nil
			}
		}()
		return c.Next()
	}
}

func rateLimitMiddleware(limiter *rate.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return util.NewRateLimited("too many requests")
		}
		return c.Next()
	}
}

// concurrencyLimitMiddleware bounds in-flight requests. Waiters are released
// when the request context expires.
func concurrencyLimitMiddleware(sem *semaphore.Weighted) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := sem.Acquire(c.UserContext(), 1); err != nil {
			return util.NewRateLimited("server is at capacity")
		}
		defer sem.Release(1)
		return c.Next()
	}
}
